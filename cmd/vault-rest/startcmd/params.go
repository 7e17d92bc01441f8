/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	hostURLFlagName      = "host-url"
	hostURLFlagShorthand = "u"
	hostURLFlagUsage     = "URL to run the vault-rest instance on. Format: HostName:Port."
	hostURLEnvKey        = "VAULT_REST_HOST_URL"

	apiKeyFlagName  = "api-key"
	apiKeyEnvKey    = "VAULT_REST_API_KEY" //nolint: gosec
	apiKeyFlagUsage = "API key checked against the X-API-Key request header. " +
		"If not set, the API is served without authentication. " + commonEnvVarUsageText + apiKeyEnvKey

	webDIDDomainFlagName  = "web-did-domain"
	webDIDDomainEnvKey    = "VAULT_REST_WEB_DID_DOMAIN"
	webDIDDomainFlagUsage = "Domain under which did:web documents are served. " +
		commonEnvVarUsageText + webDIDDomainEnvKey

	agentURLFlagName  = "agent-url"
	agentURLEnvKey    = "VAULT_REST_AGENT_URL"
	agentURLFlagUsage = "URL of the identity-agent. Format: http://<HOST>:<PORT>. " +
		commonEnvVarUsageText + agentURLEnvKey

	agentTimeoutFlagName  = "agent-timeout"
	agentTimeoutEnvKey    = "VAULT_REST_AGENT_TIMEOUT"
	agentTimeoutFlagUsage = "Timeout in seconds applied to every identity-agent call. Default: 15. " +
		commonEnvVarUsageText + agentTimeoutEnvKey

	databaseTypeFlagName      = "database-type"
	databaseTypeEnvKey        = "DATABASE_TYPE"
	databaseTypeFlagShorthand = "t"
	databaseTypeFlagUsage     = "The type of database to use. Supported options: mem, mongodb. " +
		commonEnvVarUsageText + databaseTypeEnvKey

	databaseURLFlagName      = "database-url"
	databaseURLEnvKey        = "DATABASE_URL"
	databaseURLFlagShorthand = "v"
	databaseURLFlagUsage     = "The URL of the database. Not needed if using memstore. For mongodb, " +
		"include the mongodb://mongodb.example.com:27017. " + commonEnvVarUsageText + databaseURLEnvKey

	databasePrefixFlagName  = "database-prefix"
	databasePrefixEnvKey    = "DATABASE_PREFIX"
	databasePrefixFlagUsage = "An optional prefix to be used when creating and retrieving underlying databases. " +
		commonEnvVarUsageText + databasePrefixEnvKey

	rawStoreTypeFlagName  = "raw-store-type"
	rawStoreTypeEnvKey    = "VAULT_REST_RAW_STORE_TYPE"
	rawStoreTypeFlagUsage = "Store type for raw credential and presentation artifacts. " +
		"Supported: none, s3. Default: none. " + commonEnvVarUsageText + rawStoreTypeEnvKey

	rawStoreS3BucketFlagName  = "raw-store-s3-bucket"
	rawStoreS3BucketEnvKey    = "VAULT_REST_RAW_STORE_S3_BUCKET"
	rawStoreS3BucketFlagUsage = "Raw artifact S3 bucket. " + commonEnvVarUsageText + rawStoreS3BucketEnvKey

	rawStoreS3RegionFlagName  = "raw-store-s3-region"
	rawStoreS3RegionEnvKey    = "VAULT_REST_RAW_STORE_S3_REGION"
	rawStoreS3RegionFlagUsage = "Raw artifact S3 region. " + commonEnvVarUsageText + rawStoreS3RegionEnvKey

	rawStoreS3HostNameFlagName  = "raw-store-s3-hostname"
	rawStoreS3HostNameEnvKey    = "VAULT_REST_RAW_STORE_S3_HOSTNAME"
	rawStoreS3HostNameFlagUsage = "Raw artifact S3 hostname, for S3-compatible stores. " +
		commonEnvVarUsageText + rawStoreS3HostNameEnvKey

	logLevelFlagName  = "log-level"
	logLevelEnvKey    = "LOG_LEVEL"
	logLevelFlagUsage = "Logging level. Supported levels are: CRITICAL, ERROR, WARNING, INFO, DEBUG. " +
		"Defaults to info if not set. " + commonEnvVarUsageText + logLevelEnvKey

	databaseTypeMemOption     = "mem"
	databaseTypeMongoDBOption = "mongodb"

	rawStoreTypeNoneOption = "none"
	rawStoreTypeS3Option   = "s3"

	defaultAgentTimeout = 15 * time.Second
)

type startupParameters struct {
	hostURL      string
	apiKey       string
	webDIDDomain string
	agentURL     string
	agentTimeout time.Duration
	dbParameters *dbParameters
	rawStore     *rawStoreParameters
	logLevel     string
}

type dbParameters struct {
	databaseType   string
	databaseURL    string
	databasePrefix string
}

type rawStoreParameters struct {
	storeType  string
	s3Bucket   string
	s3Region   string
	s3HostName string
}

func getStartupParameters(cmd *cobra.Command) (*startupParameters, error) {
	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	webDIDDomain, err := cmdutils.GetUserSetVarFromString(cmd, webDIDDomainFlagName, webDIDDomainEnvKey, false)
	if err != nil {
		return nil, err
	}

	agentURL, err := cmdutils.GetUserSetVarFromString(cmd, agentURLFlagName, agentURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	agentTimeout, err := getAgentTimeout(cmd)
	if err != nil {
		return nil, err
	}

	dbParams, err := getDBParameters(cmd)
	if err != nil {
		return nil, err
	}

	rawStoreParams, err := getRawStoreParameters(cmd)
	if err != nil {
		return nil, err
	}

	return &startupParameters{
		hostURL:      hostURL,
		apiKey:       cmdutils.GetUserSetOptionalVarFromString(cmd, apiKeyFlagName, apiKeyEnvKey),
		webDIDDomain: webDIDDomain,
		agentURL:     agentURL,
		agentTimeout: agentTimeout,
		dbParameters: dbParams,
		rawStore:     rawStoreParams,
		logLevel:     cmdutils.GetUserSetOptionalVarFromString(cmd, logLevelFlagName, logLevelEnvKey),
	}, nil
}

func getAgentTimeout(cmd *cobra.Command) (time.Duration, error) {
	timeoutStr := cmdutils.GetUserSetOptionalVarFromString(cmd, agentTimeoutFlagName, agentTimeoutEnvKey)
	if timeoutStr == "" {
		return defaultAgentTimeout, nil
	}

	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", agentTimeoutFlagName, err)
	}

	return time.Duration(timeout) * time.Second, nil
}

func getDBParameters(cmd *cobra.Command) (*dbParameters, error) {
	databaseType, err := cmdutils.GetUserSetVarFromString(cmd, databaseTypeFlagName, databaseTypeEnvKey, false)
	if err != nil {
		return nil, err
	}

	if databaseType != databaseTypeMemOption && databaseType != databaseTypeMongoDBOption {
		return nil, fmt.Errorf("%s value unsupported: %s", databaseTypeFlagName, databaseType)
	}

	databaseURL := cmdutils.GetUserSetOptionalVarFromString(cmd, databaseURLFlagName, databaseURLEnvKey)

	if databaseType == databaseTypeMongoDBOption && databaseURL == "" {
		return nil, fmt.Errorf("%s is required with database type %s", databaseURLFlagName,
			databaseTypeMongoDBOption)
	}

	return &dbParameters{
		databaseType:   databaseType,
		databaseURL:    databaseURL,
		databasePrefix: cmdutils.GetUserSetOptionalVarFromString(cmd, databasePrefixFlagName, databasePrefixEnvKey),
	}, nil
}

func getRawStoreParameters(cmd *cobra.Command) (*rawStoreParameters, error) {
	storeType := cmdutils.GetUserSetOptionalVarFromString(cmd, rawStoreTypeFlagName, rawStoreTypeEnvKey)
	if storeType == "" {
		storeType = rawStoreTypeNoneOption
	}

	if storeType != rawStoreTypeNoneOption && storeType != rawStoreTypeS3Option {
		return nil, fmt.Errorf("%s value unsupported: %s", rawStoreTypeFlagName, storeType)
	}

	params := &rawStoreParameters{
		storeType:  storeType,
		s3Bucket:   cmdutils.GetUserSetOptionalVarFromString(cmd, rawStoreS3BucketFlagName, rawStoreS3BucketEnvKey),
		s3Region:   cmdutils.GetUserSetOptionalVarFromString(cmd, rawStoreS3RegionFlagName, rawStoreS3RegionEnvKey),
		s3HostName: cmdutils.GetUserSetOptionalVarFromString(cmd, rawStoreS3HostNameFlagName, rawStoreS3HostNameEnvKey),
	}

	if storeType == rawStoreTypeS3Option && params.s3Bucket == "" {
		return nil, fmt.Errorf("%s is required with raw store type %s", rawStoreS3BucketFlagName,
			rawStoreTypeS3Option)
	}

	return params, nil
}

func createFlags(startCmd *cobra.Command) {
	startCmd.Flags().StringP(hostURLFlagName, hostURLFlagShorthand, "", hostURLFlagUsage)
	startCmd.Flags().StringP(apiKeyFlagName, "", "", apiKeyFlagUsage)
	startCmd.Flags().StringP(webDIDDomainFlagName, "", "", webDIDDomainFlagUsage)
	startCmd.Flags().StringP(agentURLFlagName, "", "", agentURLFlagUsage)
	startCmd.Flags().StringP(agentTimeoutFlagName, "", "", agentTimeoutFlagUsage)
	startCmd.Flags().StringP(databaseTypeFlagName, databaseTypeFlagShorthand, "", databaseTypeFlagUsage)
	startCmd.Flags().StringP(databaseURLFlagName, databaseURLFlagShorthand, "", databaseURLFlagUsage)
	startCmd.Flags().StringP(databasePrefixFlagName, "", "", databasePrefixFlagUsage)
	startCmd.Flags().StringP(rawStoreTypeFlagName, "", "", rawStoreTypeFlagUsage)
	startCmd.Flags().StringP(rawStoreS3BucketFlagName, "", "", rawStoreS3BucketFlagUsage)
	startCmd.Flags().StringP(rawStoreS3RegionFlagName, "", "", rawStoreS3RegionFlagUsage)
	startCmd.Flags().StringP(rawStoreS3HostNameFlagName, "", "", rawStoreS3HostNameFlagUsage)
	startCmd.Flags().StringP(logLevelFlagName, "", "", logLevelFlagUsage)
}
