package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/golang-jwt/jwt/v5"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/models/odataerrors"
)

const graphDefaultScope = "https://graph.microsoft.com/.default"

// NewCredential returns the default credential chain (environment,
// workload identity, managed identity, az cli).
func NewCredential() (*azidentity.DefaultAzureCredential, error) {
	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get Azure credentials: %w", err)
	}
	return cred, nil
}

// NewGraphClient creates a Microsoft Graph client from the default
// credential chain.
func NewGraphClient() (*msgraphsdk.GraphServiceClient, error) {
	cred, err := NewCredential()
	if err != nil {
		return nil, err
	}

	client, err := msgraphsdk.NewGraphServiceClientWithCredentials(cred, []string{graphDefaultScope})
	if err != nil {
		return nil, fmt.Errorf("failed to create Graph client: %w", err)
	}
	return client, nil
}

// GetToken fetches an access token for the given resource scope.
func GetToken(ctx context.Context, cred azcore.TokenCredential, scope string) (string, error) {
	token, err := cred.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{scope}})
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return token.Token, nil
}

// TenantID extracts the tenant ID from a Graph access token. The token was
// issued to us directly by Entra ID, so signature validation is skipped;
// this must never be used on tokens from incoming requests.
func TenantID(ctx context.Context, cred azcore.TokenCredential) (string, error) {
	raw, err := GetToken(ctx, cred, graphDefaultScope)
	if err != nil {
		return "", err
	}
	return tenantIDFromToken(raw)
}

// GraphError rewrites the SDK's opaque ODataError into an error carrying
// the service's code and message. Non-Graph errors pass through.
func GraphError(err error) error {
	var oerr *odataerrors.ODataError
	if !errors.As(err, &oerr) {
		return err
	}
	if e := oerr.GetErrorEscaped(); e != nil {
		return fmt.Errorf("graph error %s: %s", StrValue(e.GetCode()), StrValue(e.GetMessage()))
	}
	return err
}

func tenantIDFromToken(raw string) (string, error) {
	parser := new(jwt.Parser)
	claims := jwt.MapClaims{}
	_, _, err := parser.ParseUnverified(raw, claims)
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	tid, ok := claims["tid"].(string)
	if !ok {
		return "", errors.New("could not find 'tid' claim in token")
	}
	return tid, nil
}
