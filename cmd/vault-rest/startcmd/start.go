/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alexliesenfeld/health"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/credvault/internal/logfields"
	"github.com/trustbloc/credvault/pkg/agent"
	"github.com/trustbloc/credvault/pkg/dataprotect"
	"github.com/trustbloc/credvault/pkg/entity"
	healthchecks "github.com/trustbloc/credvault/pkg/observability/health"
	"github.com/trustbloc/credvault/pkg/restapi/resterr"
	credentialsapi "github.com/trustbloc/credvault/pkg/restapi/v1/credentials"
	didapi "github.com/trustbloc/credvault/pkg/restapi/v1/did"
	"github.com/trustbloc/credvault/pkg/restapi/v1/healthcheck"
	identifiersapi "github.com/trustbloc/credvault/pkg/restapi/v1/identifiers"
	messagesapi "github.com/trustbloc/credvault/pkg/restapi/v1/messages"
	"github.com/trustbloc/credvault/pkg/restapi/v1/mw"
	presentationsapi "github.com/trustbloc/credvault/pkg/restapi/v1/presentations"
	versionapi "github.com/trustbloc/credvault/pkg/restapi/v1/version"
	"github.com/trustbloc/credvault/pkg/service/didresolve"
	"github.com/trustbloc/credvault/pkg/service/identifier"
	"github.com/trustbloc/credvault/pkg/service/issuecredential"
	"github.com/trustbloc/credvault/pkg/service/message"
	"github.com/trustbloc/credvault/pkg/service/presentation"
	"github.com/trustbloc/credvault/pkg/storage/mem"
	"github.com/trustbloc/credvault/pkg/storage/mongodb"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/claimstore"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/credentialstore"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/encryptedcredentialstore"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/identifierstore"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/keystore"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/linkstore"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/messagestore"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/presentationstore"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/privatekeystore"
	"github.com/trustbloc/credvault/pkg/storage/mongodb/servicestore"
	"github.com/trustbloc/credvault/pkg/storage/s3/rawstore"
	"github.com/trustbloc/credvault/pkg/tenancy"
)

var logger = log.New("vault-rest")

const (
	vaultDatabaseName        = "credvault"
	healthCheckCacheDuration = 5 * time.Second
	healthCheckTimeout       = 10 * time.Second
	dataProtectorKeyLength   = 256
)

type server interface {
	ListenAndServe(host string, router http.Handler) error
}

// HTTPServer is the default server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler) error {
	return http.ListenAndServe(host, router) //nolint: gosec
}

type startOpts struct {
	version string
	server  server
}

// StartOpts configures the start command.
type StartOpts func(opts *startOpts)

// WithVersion sets the build version reported by the version endpoint.
func WithVersion(version string) StartOpts {
	return func(opts *startOpts) {
		opts.version = version
	}
}

// WithHTTPServer overrides the server implementation, for tests.
func WithHTTPServer(srv server) StartOpts {
	return func(opts *startOpts) {
		opts.server = srv
	}
}

// GetStartCmd returns the Cobra start command.
func GetStartCmd(opts ...StartOpts) *cobra.Command {
	startCmd := createStartCmd(opts...)

	createFlags(startCmd)

	return startCmd
}

func createStartCmd(opts ...StartOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Starts vault-rest server",
		Long:  "Starts the credential vault REST server",
		RunE: func(cmd *cobra.Command, args []string) error {
			options := &startOpts{
				server: &HTTPServer{},
			}

			for _, fn := range opts {
				fn(options)
			}

			parameters, err := getStartupParameters(cmd)
			if err != nil {
				return err
			}

			setDefaultLogLevel(parameters.logLevel)

			e, err := buildEchoHandler(parameters, options.version)
			if err != nil {
				return err
			}

			logger.Info("Starting vault-rest server", logfields.WithHostURL(parameters.hostURL))

			return options.server.ListenAndServe(parameters.hostURL, e)
		},
	}
}

func setDefaultLogLevel(userLogLevel string) {
	if userLogLevel == "" {
		return
	}

	logLevel, err := log.ParseLevel(userLogLevel)
	if err != nil {
		logger.Warn("Log level is not valid, defaulting to info: " + userLogLevel)

		logLevel = log.INFO
	}

	log.SetLevel("", logLevel)
}

// nolint: funlen
func buildEchoHandler(parameters *startupParameters, version string) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = resterr.HTTPErrorHandler

	if parameters.apiKey != "" {
		e.Use(mw.APIKeyAuth(parameters.apiKey))
	}

	stores, err := initStores(parameters)
	if err != nil {
		return nil, err
	}

	agentClient := agent.NewClient(parameters.agentURL, &http.Client{},
		agent.WithCallTimeout(parameters.agentTimeout))

	identifierService := identifier.New(&identifier.Config{
		IdentifierStore: stores.identifiers,
		KeyStore:        stores.keys,
		PrivateKeyStore: stores.privateKeys,
		ServiceStore:    stores.services,
		AgentClient:     agentClient,
		WebDIDDomain:    parameters.webDIDDomain,
	})

	credentialService := issuecredential.New(&issuecredential.Config{
		IssuerResolver:           identifierService,
		CredentialStore:          stores.credentials,
		EncryptedCredentialStore: stores.encryptedCredentials,
		ClaimStore:               stores.claims,
		AgentClient:              agentClient,
		DataProtector:            dataprotect.NewAES(dataProtectorKeyLength),
	})

	presentationService := presentation.New(&presentation.Config{
		PresentationStore: stores.presentations,
		LinkStore:         stores.links,
	})

	messageService := message.New(&message.Config{
		MessageStore:      stores.messages,
		LinkStore:         stores.links,
		CredentialStore:   stores.credentials,
		PresentationStore: stores.presentations,
	})

	resolveService := didresolve.New(&didresolve.Config{
		IdentifierStore: stores.identifiers,
		KeyStore:        stores.keys,
		ServiceStore:    stores.services,
		AgentResolver:   agentClient,
		WebDIDDomain:    parameters.webDIDDomain,
	})

	tenantAPI := e.Group("", tenancy.Middleware())

	identifiersapi.NewController(tenantAPI, &identifiersapi.Config{
		IdentifierService: identifierService,
	})

	credentialsapi.NewController(tenantAPI, &credentialsapi.Config{
		CredentialService: credentialService,
	})

	presentationsapi.NewController(tenantAPI, &presentationsapi.Config{
		PresentationService: presentationService,
	})

	messagesapi.NewController(tenantAPI, &messagesapi.Config{
		MessageService: messageService,
	})

	// The did.json routes are public.
	didapi.NewController(e, &didapi.Config{
		ResolveService: resolveService,
	})

	versionapi.NewController(e, versionapi.Config{Version: version})

	healthcheckController := &healthcheck.Controller{}
	e.GET("/healthcheck", healthcheckController.GetHealthcheck)

	e.GET("/ready", echo.WrapHandler(health.NewHandler(newHealthChecker(stores.mongoDBURL))))

	return e, nil
}

func newHealthChecker(mongoDBURL string) health.Checker {
	checkerOpts := []health.CheckerOption{
		health.WithCacheDuration(healthCheckCacheDuration),
		health.WithTimeout(healthCheckTimeout),
	}

	for _, check := range healthchecks.Get(&healthchecks.Config{MongoDBURL: mongoDBURL}) {
		checkerOpts = append(checkerOpts, health.WithCheck(check))
	}

	return health.NewChecker(checkerOpts...)
}

type identifierStore interface {
	Upsert(ctx context.Context, identifier *entity.Identifier) (*entity.Identifier, error)
	FindByDID(ctx context.Context, did string) (*entity.Identifier, error)
	FindByAlias(ctx context.Context, organizationID, alias string) (*entity.Identifier, error)
	List(ctx context.Context, organizationID string) ([]*entity.Identifier, error)
	UpdateAlias(ctx context.Context, did, alias string) error
	DeleteByDID(ctx context.Context, did string) error
}

type keyStore interface {
	Upsert(ctx context.Context, key *entity.CryptoKey) error
	FindByIdentifierDID(ctx context.Context, did string) ([]*entity.CryptoKey, error)
}

type privateKeyStore interface {
	Upsert(ctx context.Context, key *entity.PrivateKey) error
}

type serviceStore interface {
	Upsert(ctx context.Context, service *entity.Service) (string, error)
	FindByIdentifierDID(ctx context.Context, did string) ([]*entity.Service, error)
}

type credentialStore interface {
	Upsert(ctx context.Context, credential *entity.Credential) (*entity.Credential, error)
	FindByHash(ctx context.Context, organizationID, hash string) (*entity.Credential, error)
	FindByID(ctx context.Context, organizationID, id string) (*entity.Credential, error)
	FindByHashes(ctx context.Context, organizationID string, hashes []string) ([]*entity.Credential, error)
	List(ctx context.Context, organizationID string, filter *entity.CredentialFilter,
		page *entity.Page) ([]*entity.Credential, error)
	DeleteByHash(ctx context.Context, organizationID, hash string) error
}

type encryptedCredentialStore interface {
	Upsert(ctx context.Context, encrypted *entity.EncryptedCredential) error
}

type claimStore interface {
	ReplaceForCredential(ctx context.Context, credentialID string, claims []*entity.VCClaim) error
}

type presentationStore interface {
	Upsert(ctx context.Context, presentation *entity.Presentation) error
	FindByHash(ctx context.Context, tenantID, hash string) (*entity.Presentation, error)
	List(ctx context.Context, tenantID string, page *entity.Page) ([]*entity.Presentation, error)
	DeleteByHash(ctx context.Context, tenantID, hash string) error
}

type messageStore interface {
	Upsert(ctx context.Context, message *entity.Message) error
	FindByID(ctx context.Context, id string) (*entity.Message, error)
	DeleteByID(ctx context.Context, id string) error
}

type linkStore interface {
	UpsertCredentialMessage(ctx context.Context, link *entity.CredentialMessage) error
	CredentialHashesByMessage(ctx context.Context, messageID string) ([]string, error)
	UpsertPresentationMessage(ctx context.Context, link *entity.PresentationMessage) error
	PresentationHashesByMessage(ctx context.Context, messageID string) ([]string, error)
	ReplaceVerifiers(ctx context.Context, presentationHash string, verifierDIDs []string) error
	VerifiersByPresentation(ctx context.Context, presentationHash string) ([]string, error)
	ReplaceCredentials(ctx context.Context, presentationHash string, credentialHashes []string) error
	CredentialHashesByPresentation(ctx context.Context, presentationHash string) ([]string, error)
}

type storeSet struct {
	identifiers          identifierStore
	keys                 keyStore
	privateKeys          privateKeyStore
	services             serviceStore
	credentials          credentialStore
	encryptedCredentials encryptedCredentialStore
	claims               claimStore
	presentations        presentationStore
	messages             messageStore
	links                linkStore
	mongoDBURL           string
}

func initStores(parameters *startupParameters) (*storeSet, error) {
	var (
		set *storeSet
		err error
	)

	switch parameters.dbParameters.databaseType {
	case databaseTypeMemOption:
		set = initMemStores()
	case databaseTypeMongoDBOption:
		set, err = initMongoDBStores(parameters.dbParameters)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s value unsupported: %s", databaseTypeFlagName,
			parameters.dbParameters.databaseType)
	}

	if parameters.rawStore.storeType == rawStoreTypeS3Option {
		s3Client, err := createS3Client(parameters.rawStore)
		if err != nil {
			return nil, err
		}

		raw := rawstore.NewStore(s3Client, parameters.rawStore.s3Bucket)

		set.credentials = rawstore.NewCredentialDecorator(set.credentials, raw)
		set.presentations = rawstore.NewPresentationDecorator(set.presentations, raw)
	}

	return set, nil
}

func initMemStores() *storeSet {
	provider := mem.NewProvider()

	return &storeSet{
		identifiers:          provider.IdentifierStore(),
		keys:                 provider.KeyStore(),
		privateKeys:          provider.PrivateKeyStore(),
		services:             provider.ServiceStore(),
		credentials:          provider.CredentialStore(),
		encryptedCredentials: provider.EncryptedCredentialStore(),
		claims:               provider.ClaimStore(),
		presentations:        provider.PresentationStore(),
		messages:             provider.MessageStore(),
		links:                provider.LinkStore(),
	}
}

func initMongoDBStores(params *dbParameters) (*storeSet, error) {
	mongoClient, err := mongodb.New(params.databaseURL, params.databasePrefix+vaultDatabaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to create MongoDB client: %w", err)
	}

	identifierStore, err := identifierstore.New(mongoClient)
	if err != nil {
		return nil, err
	}

	keyStore, err := keystore.New(mongoClient)
	if err != nil {
		return nil, err
	}

	serviceStore, err := servicestore.New(mongoClient)
	if err != nil {
		return nil, err
	}

	credentialStore, err := credentialstore.New(mongoClient)
	if err != nil {
		return nil, err
	}

	claimStore, err := claimstore.New(mongoClient)
	if err != nil {
		return nil, err
	}

	presentationStore, err := presentationstore.New(mongoClient)
	if err != nil {
		return nil, err
	}

	messageStore, err := messagestore.New(mongoClient)
	if err != nil {
		return nil, err
	}

	return &storeSet{
		identifiers:          identifierStore,
		keys:                 keyStore,
		privateKeys:          privatekeystore.New(mongoClient),
		services:             serviceStore,
		credentials:          credentialStore,
		encryptedCredentials: encryptedcredentialstore.New(mongoClient),
		claims:               claimStore,
		presentations:        presentationStore,
		messages:             messageStore,
		links:                linkstore.New(mongoClient),
		mongoDBURL:           params.databaseURL,
	}, nil
}

func createS3Client(params *rawStoreParameters) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(params.s3Region),
	}

	if params.s3HostName != "" {
		endpoint := fmt.Sprintf("http://%s", params.s3HostName)

		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(aws.EndpointResolverWithOptionsFunc(
			func(service, region string, options ...interface{}) (aws.Endpoint, error) {
				return aws.Endpoint{URL: endpoint, HostnameImmutable: true}, nil
			})))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = params.s3HostName != ""
	}), nil
}
