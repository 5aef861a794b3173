package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixelforge/qrcanvas/pkg/canvas"
)

// formatsCommand creates the formats command listing the encoder registry.
func (c *CLI) formatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the image formats the encoder registry supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := canvas.Formats()

			fmt.Println(StyleTitle.Render("Supported formats"))
			for _, f := range formats {
				marker := ""
				if f == canvas.DefaultFormat {
					marker = StyleDim.Render(" (default)")
				}
				fmt.Println("  " + StyleValue.Render(f) + marker)
			}
			printNewline()
			printNextStep("Render one", "qrcanvas render \"hello\" -f "+canvas.DefaultFormat)
			return nil
		},
	}
}
