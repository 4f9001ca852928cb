package installer

// PackageSet returns the ordered package list for a family.
// kernelRelease pins the kernel-headers package to the running kernel;
// extra packages from the config file are appended last.
func PackageSet(family Family, kernelRelease string, extra []string) []string {
	var packages []string
	switch family {
	case FamilyRedhat:
		packages = []string{
			"neovim",
			"git",
			"curl",
			"unzip",
			"nodejs",
			"npm",
			"python3",
			"python3-pip",
			"gcc",
			"make",
			"ripgrep",
			"fd-find",
			"clang",
			"bash",
			"shfmt",
			// Linux kernel development tools
			"sparse",
			"cscope",
			"ctags",
			"gdb",
			"crash",
			"qemu-system-x86",
			"strace",
			"ltrace",
			"kernel-devel-" + kernelRelease,
			"ncurses-devel",
		}
	case FamilyDebian:
		packages = []string{
			"neovim",
			"git",
			"curl",
			"unzip",
			"nodejs",
			"npm",
			"python3",
			"python3-pip",
			"build-essential",
			"ripgrep",
			"fd-find",
			"clangd",
			"clang-format",
			"bash",
			"shfmt",
			// Linux kernel development tools
			"sparse",
			"cscope",
			"ctags-universal",
			"gdb",
			"crash",
			"kdump-tools",
			"kexec-tools",
			"qemu-system-x86",
			"strace",
			"ltrace",
			"linux-headers-" + kernelRelease,
			"libncurses-dev",
		}
	}
	return append(packages, extra...)
}

// VerifiedTools is the command list the verification stage checks on
// PATH after installation.
var VerifiedTools = []string{
	"nvim", "git", "curl", "unzip", "node", "npm", "python3", "pip3",
	"gcc", "make", "rg", "fd", "clang", "bash", "shfmt", "rustup",
	"go", "lazygit", "golangci-lint", "black", "isort", "prettier", "stylua",
	// Linux kernel tools
	"sparse", "cscope", "ctags", "gdb", "crash",
	"qemu-system-x86_64", "strace", "ltrace",
}
