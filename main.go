/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package main

/*****************************************************************************************************************/

import (
	"github.com/heliopol/solpol/cmd"
)

/*****************************************************************************************************************/

func main() {
	cmd.Execute()
}

/*****************************************************************************************************************/
