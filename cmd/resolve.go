/*****************************************************************************************************************/

//	@package	solpol

/*****************************************************************************************************************/

package cmd

/*****************************************************************************************************************/

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heliopol/solpol/pkg/angle"
	"github.com/heliopol/solpol/pkg/ingest"
	"github.com/heliopol/solpol/pkg/resolve"
)

/*****************************************************************************************************************/

var (
	targetFlag         string
	imaxEffectFlag     bool
	outAnglesFlag      []string
	referenceAngleFlag string
)

/*****************************************************************************************************************/

var resolveCommand = &cobra.Command{
	Use:   "resolve [files...]",
	Short: "Load one or more FITS exposures and convert them to the target polarization system.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

/*****************************************************************************************************************/

func init() {
	resolveCommand.Flags().StringVar(&targetFlag, "target", "", "target polarization system, e.g. bpb, stokes, mzpsolar (required)")
	resolveCommand.Flags().BoolVar(&imaxEffectFlag, "imax-effect", false, "apply the IMAX foreshortening correction before converting")
	resolveCommand.Flags().StringSliceVar(&outAnglesFlag, "out-angle", nil, "target polarizer angle (repeatable), required when converting to npol")
	resolveCommand.Flags().StringVar(&referenceAngleFlag, "reference-angle", "", "override the OBSRVTRY-derived spacecraft reference angle")
	_ = resolveCommand.MarkFlagRequired("target")
}

/*****************************************************************************************************************/

func runResolve(command *cobra.Command, paths []string) error {
	input, err := ingest.Load(paths)
	if err != nil {
		return err
	}

	opts := resolve.Options{ImaxEffect: imaxEffectFlag}

	for _, raw := range outAnglesFlag {
		q, err := angle.Parse(raw)
		if err != nil {
			return err
		}
		opts.OutAngles = append(opts.OutAngles, q)
	}

	if referenceAngleFlag != "" {
		q, err := angle.Parse(referenceAngleFlag)
		if err != nil {
			return err
		}
		opts.ReferenceAngle = &q
	}

	output, err := resolve.Resolve(input, targetFlag, opts)
	if err != nil {
		return err
	}

	for _, key := range output.Keys() {
		cube, _ := output.Get(key)
		fmt.Printf("%s: %dx%d POLAR=%v\n", key, cube.Rows(), cube.Columns(), cube.Meta["POLAR"])
	}

	return nil
}

/*****************************************************************************************************************/
