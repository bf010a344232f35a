/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package main implements aascheck, a compliance checker for AAS files.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rwth-iat/basyx-go-framework/pkg/compliance"
	"github.com/rwth-iat/basyx-go-framework/pkg/jsonization"
	"github.com/rwth-iat/basyx-go-framework/pkg/xmlization"
)

var (
	jsonOutput bool
	fileFormat string
)

var rootCmd = &cobra.Command{
	Use:   "aascheck",
	Short: "Checks AAS environment files for meta-model compliance",
	Long: `aascheck validates Asset Administration Shell environment files against
the constraints of 'Details of the Asset Administration Shell'. The
serialization format is chosen by the file extension (.json or .xml).`,
	SilenceUsage: true,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Check one or more AAS environment files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

// fileReport pairs a report with the file it was produced for in the
// machine-readable output.
type fileReport struct {
	File   string             `json:"file"`
	Report *compliance.Report `json:"report"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	checker := compliance.NewChecker()

	var reports []fileReport
	failed := false
	for _, path := range args {
		report, err := checkFile(checker, path)
		if err != nil {
			return fmt.Errorf("checking %s: %w", path, err)
		}
		reports = append(reports, fileReport{File: path, Report: report})
		if !report.Compliant() {
			failed = true
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		printReports(cmd, reports)
	}

	if failed {
		// Non-zero exit without the extra error line cobra would print.
		os.Exit(1)
	}
	return nil
}

// checkFile checks one file, honoring the --format override where the file
// extension alone does not tell the serialization apart.
func checkFile(checker *compliance.Checker, path string) (*compliance.Report, error) {
	switch fileFormat {
	case "":
		return checker.CheckFile(path)
	case "json":
		objectStore, err := jsonization.ReadEnvironmentFile(path, jsonization.ReadOptions{})
		if err != nil {
			return nil, err
		}
		return checker.CheckObjects(objectStore.All()), nil
	case "xml":
		objectStore, err := xmlization.ReadEnvironmentFile(path, jsonization.ReadOptions{})
		if err != nil {
			return nil, err
		}
		return checker.CheckObjects(objectStore.All()), nil
	default:
		return nil, fmt.Errorf("unsupported format %q, expected json or xml", fileFormat)
	}
}

func printReports(cmd *cobra.Command, reports []fileReport) {
	out := cmd.OutOrStdout()
	for _, fr := range reports {
		if len(fr.Report.Findings) == 0 {
			fmt.Fprintf(out, "%s: OK\n", fr.File)
			continue
		}
		status := "OK"
		if !fr.Report.Compliant() {
			status = "NOT COMPLIANT"
		}
		fmt.Fprintf(out, "%s: %s (%d findings)\n", fr.File, status, len(fr.Report.Findings))
		for _, finding := range fr.Report.Findings {
			fmt.Fprintf(out, "  %s\n", finding)
		}
	}
}

func main() {
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print reports as JSON")
	checkCmd.Flags().StringVar(&fileFormat, "format", "", "Serialization format (json or xml), inferred from the file extension when empty")
	rootCmd.AddCommand(checkCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
