package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"linetemp/air"
	"linetemp/quantity"
)

var (
	airTemps []float64
	airAlt   float64

	airCmd = &cobra.Command{
		Use:   "air",
		Short: "Print CIGRE air properties for the given temperatures.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := air.Evaluate(quantity.Of(airTemps...), quantity.Scalar(airAlt))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "T (C)\tREL DENSITY\tRHO (kg/m3)\tNU (m2/s)\tMU (kg/m/s)\tK (W/m/K)\tPR")
			for i, t := range p.Temperature {
				fmt.Fprintf(w, "%g\t%.5f\t%.5f\t%.4e\t%.4e\t%.5f\t%.4f\n", t,
					p.RelativeDensity[i], p.VolumicMass[i], p.KinematicViscosity[i],
					p.DynamicViscosity[i], p.ThermalConductivity[i], p.Prandtl[i])
			}
			return w.Flush()
		},
	}
)

func init() {
	airCmd.Flags().Float64SliceVar(&airTemps, "temp", []float64{20}, "air temperatures in Celsius")
	airCmd.Flags().Float64Var(&airAlt, "alt", 0, "altitude in meters")
}
