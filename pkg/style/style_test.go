package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPrefixes(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterTo(&out, &errOut)

	p.Errorf("backup of %s failed", "/src")
	p.Warningf("nothing to back up")
	p.Successf("cleanup finished")
	p.Infof("preparing backup")
	p.Itemf("Found: %s", "/home/user/.config/nvim")
	p.Plainf("Next Steps:")

	assert.Contains(t, errOut.String(), "ERROR: backup of /src failed")
	assert.Contains(t, errOut.String(), "WARNING: nothing to back up")
	assert.Contains(t, out.String(), "SUCCESS: cleanup finished")
	assert.Contains(t, out.String(), "INFO: preparing backup")
	assert.Contains(t, out.String(), "  - Found: /home/user/.config/nvim")
	assert.Contains(t, out.String(), "Next Steps:\n")
}

func TestPrinterStreamSeparation(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterTo(&out, &errOut)

	p.Errorf("boom")
	assert.Empty(t, out.String())

	p.Successf("fine")
	assert.NotContains(t, errOut.String(), "fine")
}

func TestRule(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterTo(&out, &errOut)
	p.Rule(5)
	assert.Equal(t, "-----\n", out.String())
}
