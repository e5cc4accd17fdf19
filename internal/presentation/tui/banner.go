package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the Sojourn ASCII art banner.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Teal-to-blue gradient
	s1 := termenv.String("  ____         _                       ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String(" / ___|  ___  (_) ___  _   _ _ __ _ __ ").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String(" \\___ \\ / _ \\ | |/ _ \\| | | | '__| '_ \\").Foreground(p.Color("#38bdf8"))
	s4 := termenv.String("  ___) | (_) || | (_) | |_| | |  | | | |").Foreground(p.Color("#60a5fa"))
	s5 := termenv.String(" |____/ \\___/_/ |\\___/ \\__,_|_|  |_| |_|").Foreground(p.Color("#818cf8"))
	s6 := termenv.String("            |__/                        ").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	if version != "" {
		v := termenv.String("  travel insurance core " + version).Faint()
		fmt.Println(v)
	}
	fmt.Println()
}
