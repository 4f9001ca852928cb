package nvup

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Set up Neovim for Linux kernel development"
	MsgConfigShort     = "Back up, clean and write the Neovim configuration"
	MsgToolsShort      = "Install system packages and development tools"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Section headers
	MsgConfigHeader = "--- Neovim Lua Configuration Setup ---"
	MsgToolsHeader  = "--- Neovim Tools Installation for Linux ---"

	// Status messages
	MsgConfigTarget   = "Target Neovim config directory: %s"
	MsgToolsSystem    = "System: %s %s"
	MsgConfigComplete = "Neovim configuration setup complete!"
	MsgToolsComplete  = "Neovim tools installation complete!"
	MsgConfigFarewell = "--- Enjoy your new Neovim setup! ---"
	MsgToolsFarewell  = "--- Enjoy your enhanced Neovim setup for Linux kernel development! ---"
	MsgSudoWarning    = "This command may require sudo privileges to install packages."
	MsgSudoPromptHint = "You may be prompted for your sudo password during installation."
	MsgNextStepsTitle = "Next Steps"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without executing them"

	// Completion help
	MsgCompletionLong = `To load completions:

Bash:
  $ source <(nvup completion bash)
  # To load completions for each session, execute once:
  $ nvup completion bash > /etc/bash_completion.d/nvup

Zsh:
  $ nvup completion zsh > "${fpath[1]}/_nvup"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ nvup completion fish | source
  # To load completions for each session, execute once:
  $ nvup completion fish > ~/.config/fish/completions/nvup.fish

PowerShell:
  PS> nvup completion powershell | Out-String | Invoke-Expression
`
)

// Long command descriptions
const (
	MsgRootLong = `nvup sets up a complete Neovim environment for Linux kernel development.

The config command replaces the Neovim configuration with a curated
lazy.nvim based setup, backing up the existing one first. The tools
command installs the system packages and development tools the
configuration depends on.`

	MsgConfigLong = `Config backs up the existing Neovim configuration, data and state
directories, removes them after confirmation, and writes a fresh
lazy.nvim based configuration in their place.

Backup and cleanup failures are reported but never stop the run; only
a failure to write the new configuration does.`

	MsgToolsLong = `Tools detects the Linux distribution, installs the required system
packages with its package manager, then installs the tools no
distribution packages: rustup, Go, lazygit, golangci-lint, stylua,
plus Python and Node.js formatters. It finishes by patching the
lazy.nvim plugin list with kernel development plugins and verifying
every tool is on PATH.`
)

// Next-steps panel contents, shown after each command succeeds.
var (
	configNextSteps = []string{
		"1. Launch Neovim (`nvim`).",
		"2. Wait for lazy.nvim to install plugins (this happens automatically).",
		"   - If plugins don't install, run `:Lazy sync`.",
		"3. Restart Neovim after plugin installation.",
		"4. Run `:checkhealth` to diagnose any issues.",
		"5. Run `:Mason` to verify LSP installations (e.g., lua_ls, pyright).",
		"6. Test the setup:",
		"   - Open a Lua file to check if LSP (lua_ls) works.",
		"   - Press `<leader>e` (space + e) to toggle the file explorer.",
		"   - The Gruvbox theme should be applied automatically.",
	}

	toolsNextSteps = []string{
		"1. Launch Neovim (`nvim`) and let lazy.nvim install the new plugins.",
		"2. Run `:checkhealth` in Neovim to diagnose any issues.",
		"3. Run `:Mason` to verify LSP installations.",
		"4. For Linux kernel development:",
		"   - Navigate to your kernel source directory (e.g., /usr/src/linux).",
		"   - Generate cscope database: `cscope -R -b -q`",
		"   - Use `<leader>cs` to find symbols, `<leader>cg` to find definitions.",
		"   - Use `gdb` for debugging (configure nvim-dap if needed).",
		"   - Use `sparse` for static analysis: `make C=1 CHECK=sparse`",
	}
)
