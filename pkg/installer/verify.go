package installer

import (
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/style"
)

// VerifyTools checks every expected command for PATH (or tool cache)
// presence and returns the missing ones. Verification never fails the
// installer; it only reports.
func VerifyTools(cache *ToolCache, p *style.Printer, tools []string) []string {
	logger := logging.GetLogger("installer.verify")
	p.Infof("Verifying installations...")

	var missing []string
	for _, tool := range tools {
		if cache.Has(tool) {
			p.Successf("%s is installed.", tool)
		} else {
			p.Warningf("%s is not installed or not in PATH.", tool)
			missing = append(missing, tool)
		}
	}

	logger.Info().Int("checked", len(tools)).Int("missing", len(missing)).Msg("Verification finished")
	return missing
}
