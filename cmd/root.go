/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"github.com/spf13/cobra"
)

/*****************************************************************************************************************/

var rootCommand = &cobra.Command{
	Use:   "solpol",
	Short: "solpol converts between linear-polarization representations of solar coronagraph imagery.",
	Long:  "solpol converts between linear-polarization representations of solar coronagraph imagery, following the closed-form identities of DeForest, Seaton & West (2022).",
}

/*****************************************************************************************************************/

func init() {
	rootCommand.AddCommand(resolveCommand)
}

/*****************************************************************************************************************/

func Execute() {
	if err := rootCommand.Execute(); err != nil {
		panic(err)
	}
}

/*****************************************************************************************************************/
