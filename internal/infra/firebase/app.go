// Package firebase initialises the Firebase app and the Firestore client used for the remote log.
package firebase

import (
	"context"
	"log/slog"

	"vplmon/config"
	"vplmon/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Context context.Context
	Config  *config.Config
	Logger  *slog.Logger
}

// NewFirestoreClient connects to the project's Firestore. It returns nil when firebase is not
// configured, which disables remote log persistence.
func NewFirestoreClient(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		params.Logger.Info("Firebase not configured, remote log persistence disabled")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Context, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Context)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Firestore client initialised", slog.String("project_id", cfg.ProjectID))

	return client, nil
}
