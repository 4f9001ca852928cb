package installer

import (
	"strings"

	"github.com/arthur-debert/nvup/pkg/errors"
	"github.com/arthur-debert/nvup/pkg/logging"
	"github.com/arthur-debert/nvup/pkg/manifest"
	"github.com/arthur-debert/nvup/pkg/style"
	"github.com/arthur-debert/nvup/pkg/types"
)

// kernelPlugins is the plugin block inserted into lazy.lua for Linux
// kernel development.
const kernelPlugins = `  -- Linux kernel coding style
  {
    'vivien/vim-linux-coding-style',
    ft = {'c', 'cpp'},
    config = function()
      vim.g.linuxsty_patterns = { '/usr/src/', '/linux/' }
      print('vim-linux-coding-style configured')
    end,
  },
  -- Cscope integration for code navigation
  {
    'dhananjaylatkar/cscope.nvim',
    dependencies = { 'nvim-telescope/telescope.nvim' },
    ft = {'c', 'cpp'},
    config = function()
      require('cscope').setup({
        db_file = './cscope.out', -- Location of cscope database
        cscope = {
          exec = 'cscope', -- Cscope executable
          picker = 'telescope', -- Use Telescope for results
        },
      })
      -- Keymaps for cscope
      local map = vim.keymap.set
      map('n', '<leader>cs', ':Cs find s <C-R>=expand("<cword>")<CR><CR>', { desc = 'Cscope find symbol' })
      map('n', '<leader>cg', ':Cs find g <C-R>=expand("<cword>")<CR><CR>', { desc = 'Cscope find definition' })
      map('n', '<leader>cc', ':Cs find c <C-R>=expand("<cword>")<CR><CR>', { desc = 'Cscope find callers' })
      print('cscope.nvim configured')
    end,
  },`

// patchSignature identifies an already-applied patch.
const patchSignature = "vivien/vim-linux-coding-style"

// PatchLazyConfig inserts the kernel-development plugin block into the
// lazy.nvim bootstrap file. The block goes after the sentinel comment
// when present, otherwise after the first line opening a plugin table.
// A missing file leaves it untouched with a warning; a missing setup
// marker is a failure so callers can tell the operator to patch by
// hand. Either way this step never stops the installer.
func PatchLazyConfig(fsys types.FS, lazyPath string, p *style.Printer, dryRun bool) types.Result {
	logger := logging.GetLogger("installer.patch")

	data, err := fsys.ReadFile(lazyPath)
	if err != nil {
		p.Errorf("Neovim configuration file not found: %s", lazyPath)
		p.Warningf("Skipping Neovim configuration update.")
		return types.Warnf("lazy.lua not found")
	}
	content := string(data)

	if !strings.Contains(content, manifest.LazySetupMarker) {
		p.Errorf("Could not find require('lazy').setup in lazy.lua")
		return types.Failf(errors.New(errors.ErrPatchMarker, "lazy.lua setup marker not found"), "setup marker missing")
	}

	if strings.Contains(content, patchSignature) {
		p.Infof("Neovim configuration already contains the Linux kernel plugins.")
		return types.OK("already patched")
	}

	p.Infof("Updating Neovim configuration for Linux kernel development...")

	lines := strings.Split(content, "\n")
	at := insertionLine(lines)
	if at < 0 {
		p.Errorf("Could not find an insertion point in lazy.lua")
		return types.Failf(errors.New(errors.ErrPatchMarker, "no insertion point in lazy.lua"), "no insertion point")
	}

	if dryRun {
		p.Infof("Dry run: would insert kernel plugins after line %d of %s", at+1, lazyPath)
		return types.OK("dry run")
	}

	patched := make([]string, 0, len(lines)+1)
	patched = append(patched, lines[:at+1]...)
	patched = append(patched, kernelPlugins)
	patched = append(patched, lines[at+1:]...)

	if err := fsys.WriteFile(lazyPath, []byte(strings.Join(patched, "\n")), 0644); err != nil {
		p.Errorf("Failed to update Neovim configuration: %v", err)
		return types.Failf(errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", lazyPath), "patch write failed")
	}

	logger.Info().Str("path", lazyPath).Int("line", at+1).Msg("Configuration patched")
	p.Successf("Neovim configuration updated with Linux kernel plugins.")
	return types.OK("patched")
}

// insertionLine picks the line index the plugin block is inserted
// after: the sentinel comment when present, else the first line whose
// trimmed text starts with an opening brace. Returns -1 when neither
// exists.
func insertionLine(lines []string) int {
	for i, line := range lines {
		if strings.TrimSpace(line) == manifest.PluginSentinel {
			return i
		}
	}
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "{") {
			return i
		}
	}
	return -1
}
