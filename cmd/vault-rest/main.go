/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package main is the entry point of the credential vault REST server.
package main

import (
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credvault/cmd/vault-rest/startcmd"
)

var logger = log.New("vault-rest")

var Version string // embedded during build

func main() {
	rootCmd := &cobra.Command{
		Use: "vault-rest",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.HelpFunc()(cmd, args)
		},
	}

	rootCmd.AddCommand(startcmd.GetStartCmd(startcmd.WithVersion(Version)))

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to run vault-rest", log.WithError(err))
	}
}
