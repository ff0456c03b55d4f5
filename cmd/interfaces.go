package cmd

import (
	"fmt"
	"log"

	"github.com/endorses/pawcap/pkg/capture"
	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List capture-suitable network interfaces",
	Long:  `List all network interfaces that pawcap can capture from`,
	Run: func(cmd *cobra.Command, args []string) {
		interfaces, err := capture.ListInterfaces()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("Available network interfaces:")
		for _, iface := range interfaces {
			fmt.Printf("- %s  %s\n", iface.Name, iface.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
