package pool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `<html><body>
<h1>Contact export</h1>
<table>
  <tr><th>Name</th><th>Email</th><th>Company</th><th>Title</th><th>Industry</th><th>Size</th><th>Notes</th></tr>
  <tr>
    <td> Maya  Okafor </td>
    <td>maya@example.com</td>
    <td>Meridian Health</td>
    <td>CTO</td>
    <td>Healthcare</td>
    <td>1001-5000</td>
    <td>Searching for a new role.</td>
  </tr>
  <tr>
    <td>Ben Ito</td>
    <td>ben@example.org</td>
    <td>SummitCo</td>
    <td>Event Director</td>
    <td>Media</td>
    <td>51-200</td>
  </tr>
  <tr><td>too</td><td>few</td><td>cells</td></tr>
</table>
<table><tr><td>x</td><td>x</td><td>x</td><td>x</td><td>x</td><td>x</td></tr></table>
</body></html>`

func TestParseHTML(t *testing.T) {
	got, err := ParseHTML(strings.NewReader(sampleExport))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Maya Okafor", got[0].Name)
	assert.Equal(t, "maya@example.com", got[0].Email)
	assert.Equal(t, "CTO", got[0].Title)
	assert.Equal(t, "1001-5000", got[0].CompanySize)
	assert.Equal(t, "Searching for a new role.", got[0].Notes)

	assert.Equal(t, "Ben Ito", got[1].Name)
	assert.Empty(t, got[1].Notes)
}

func TestParseHTML_NoTable(t *testing.T) {
	got, err := ParseHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestImportHTML(t *testing.T) {
	p := New(1)
	n, err := p.ImportHTML("clients", strings.NewReader(sampleExport))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, p.Size("clients"))
}
