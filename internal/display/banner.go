package display

import (
	"fmt"
	"os"

	"github.com/zero-or-one/speech-preprocessing-toolkit/internal/term"
)

// PrintBanner prints the toolkit ASCII banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____                       _     ____
/ ___| _ __   ___  ___  ___| |__ |  _ \ _ __ ___ _ __
\___ \| '_ \ / _ \/ _ \/ __| '_ \| |_) | '__/ _ \ '_ \
 ___) | |_) |  __/  __/ (__| | | |  __/| | |  __/ |_) |
|____/| .__/ \___|\___|\___|_| |_|_|   |_|  \___| .__/
      |_|                                       |_|
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
