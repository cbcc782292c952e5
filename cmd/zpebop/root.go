/*
 * root.go, part of zpebop.
 *
 *
 * Copyright 2026 The zpebop developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	zpebop "github.com/crudechem/zpebop"
	"github.com/crudechem/zpebop/bopjson"
	"github.com/crudechem/zpebop/bopplot"
)

//newRootCmd builds a fresh root command with its flags bound to viper.
//Commands are single-use: Execute builds one per invocation, so no flag
//state survives from one run to the next.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zpebop",
		Short: "Zero-point vibrational energies from Mulliken bond orders",
		Long: `zpebop estimates the zero-point vibrational energy of a molecule from
the Mulliken bond orders of a minimal-basis (MinPop) Hartree-Fock run,
without computing a Hessian. It also decomposes the energy into
per-bond contributions and isotope-corrected variants.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringP("file", "f", "", "Gaussian output file with MinPop populations (.out or .out.gz)")
	cmd.MarkFlagRequired("file")
	cmd.Flags().String("model", "zpebop2", "energy model, zpebop1 or zpebop2")
	cmd.Flags().String("param-folder", "opt_parameters", "folder with ZPEBOP-2 parameter files")
	cmd.Flags().Bool("be", false, "print gross, net and composite bond-energy tables")
	cmd.Flags().Bool("sort", false, "print the sorted net bond energies")
	cmd.Flags().Bool("desc", false, "sort from highest to lowest instead")
	cmd.Flags().StringArray("isotope", nil, "isotope substitution N:mass or N:label, e.g. 1:D (repeatable)")
	cmd.Flags().Bool("compare", false, "print isotope-corrected tables next to the normal ones")
	cmd.Flags().Bool("json", false, "also write the results as JSON")
	cmd.Flags().StringP("output", "o", "bopout.json", "path of the JSON output")
	cmd.Flags().String("plot", "", "write a bond-energy spectrum image to this path")
	cmd.Flags().BoolP("verbose", "v", false, "diagnostic logging to stderr")
	viper.BindPFlags(cmd.Flags())
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	viper.SetConfigName(".zpebop")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("ZPEBOP")
	viper.AutomaticEnv()

	//no config file is fine, flags and defaults take over
	_ = viper.ReadInConfig()
}

func run(cmd *cobra.Command, args []string) error {
	log := zap.NewNop().Sugar()
	if viper.GetBool("verbose") {
		zl, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer zl.Sync()
		log = zl.Sugar()
	}

	model, err := zpebop.ParseModel(viper.GetString("model"))
	if err != nil {
		return err
	}
	file := viper.GetString("file")
	rec, err := zpebop.ReadMinPopFile(file)
	if err != nil {
		return err
	}
	log.Debugw("populations read", "file", file, "atoms", rec.Len())

	folder := viper.GetString("param-folder")
	var params *zpebop.ParameterSet
	if model == zpebop.ZPEBOP1 {
		params = zpebop.Zpebop1Parameters()
		folder = "(built-in)"
	} else {
		params, err = zpebop.LoadParameters(folder)
		if err != nil {
			return err
		}
	}

	res, err := zpebop.Compute(rec, params, model)
	if err != nil {
		return err
	}
	log.Debugw("energy computed", "model", model.String(), "total", res.Total)

	isotopes, err := parseIsotopes(viper.GetStringSlice("isotope"))
	if err != nil {
		return err
	}
	var iso *zpebop.IsotopeResult
	if len(isotopes) > 0 {
		iso, err = zpebop.ComputeIsotope(res, rec, isotopes)
		if err != nil {
			return err
		}
		log.Debugw("isotope correction applied", "substitutions", len(isotopes))
	}

	out := cmd.OutOrStdout()
	printTitle(out, file, folder, res)
	if iso != nil {
		printIsotopeSummary(out, iso)
	}

	sortOpts := zpebop.SortOptions{
		Descending: viper.GetBool("desc"),
		Isotopes:   isotopes,
	}

	if viper.GetBool("be") {
		printBondTables(out, res, rec.Atoms)
		if iso != nil && viper.GetBool("compare") {
			printIsotopeTables(out, iso, rec.Atoms)
		}
	}

	var sorted []zpebop.BondEnergy
	if viper.GetBool("sort") {
		net := res.Net()
		if iso != nil && viper.GetBool("compare") {
			net = iso.Net()
		}
		sorted = zpebop.SortedBondEnergies(net, rec.Atoms, sortOpts)
		printSorted(out, sorted, sortOpts.Descending)
	}

	if name := viper.GetString("plot"); name != "" {
		if sorted == nil {
			sorted = zpebop.SortedBondEnergies(res.Net(), rec.Atoms, sortOpts)
		}
		if err := bopplot.SpectrumFile(sorted, file, name); err != nil {
			return err
		}
		log.Debugw("spectrum written", "path", name)
	}

	if viper.GetBool("json") {
		doc := bopjson.NewDocument(res, file)
		doc.AddBondEnergies(res)
		doc.AddSorted(zpebop.SortedBondEnergies(res.Net(), rec.Atoms, sortOpts))
		if iso != nil {
			doc.AddIsotope(iso)
		}
		name := viper.GetString("output")
		w, err := os.Create(name)
		if err != nil {
			return err
		}
		defer w.Close()
		if jerr := doc.Send(w); jerr != nil {
			return jerr
		}
		log.Debugw("json written", "path", name)
	}
	return nil
}

//parseIsotopes turns repeated N:mass or N:label flags into a
//substitution map. Labels are the spectroscopic names of
//zpebop.CommonIsotopes, so 1:D and 1:2.014102 mean the same thing.
func parseIsotopes(entries []string) (map[int]float64, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make(map[int]float64, len(entries))
	for _, e := range entries {
		idx, val, found := strings.Cut(e, ":")
		if !found {
			return nil, fmt.Errorf("isotope %q: want N:mass or N:label", e)
		}
		n, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			return nil, fmt.Errorf("isotope %q: bad atom index: %v", e, err)
		}
		val = strings.TrimSpace(val)
		if m, ok := zpebop.CommonIsotopes[val]; ok {
			out[n] = m
			continue
		}
		m, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("isotope %q: %q is neither a known label nor a mass", e, val)
		}
		out[n] = m
	}
	return out, nil
}
