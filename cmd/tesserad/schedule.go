package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tessera-chain/tessera/x/gov"
)

const (
	flagVestingPeriod    = "vesting-period"
	flagVestingSubperiod = "vesting-subperiod"
	flagStake            = "stake"
)

// decayScheduleCmd prints the weighted stake at every decay step of one
// vesting window, for inspecting a parameter set before proposing it.
func decayScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decay-schedule",
		Short: "Print the per-subperiod decayed stake for a parameter set",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := gov.DefaultParams()
			params.VestingPeriod = viper.GetDuration(flagVestingPeriod)
			params.VestingSubperiod = viper.GetDuration(flagVestingSubperiod)
			stake := viper.GetInt64(flagStake)

			n, err := params.SubperiodCount()
			if err != nil {
				return err
			}
			fmt.Printf("N = %d subperiods of %s over %s, stake %d\n",
				n, params.VestingSubperiod, params.VestingPeriod, stake)
			for k := int64(0); k <= n; k++ {
				coef := gov.Coefficient{Numerator: n - k, Denominator: n}
				weighted, ok := coef.Apply(stake)
				if !ok {
					return fmt.Errorf("overflow applying %s to %d", coef.String(), stake)
				}
				fmt.Printf("  k=%-3d coefficient=%-8s weighted=%d\n", k, coef.String(), weighted)
			}
			return nil
		},
	}

	cmd.Flags().Duration(flagVestingPeriod, 180*24*time.Hour, "length of the vesting window")
	cmd.Flags().Duration(flagVestingSubperiod, 30*24*time.Hour, "length of one decay step")
	cmd.Flags().Int64(flagStake, 100, "staked amount to project")
	return cmd
}
