package testutil

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/gcloud"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const EmulatorProjectID = "test-project"

type TestPubSub struct {
	Container     *gcloud.GCloudContainer
	URI           string
	Conn          *grpc.ClientConn
	ClientOptions []option.ClientOption
}

func SetupTestPubSub(t *testing.T) *TestPubSub {
	t.Helper()

	ctx := context.Background()

	container, err := gcloud.RunPubsub(ctx,
		"gcr.io/google.com/cloudsdktool/cloud-sdk:367.0.0-emulators",
		gcloud.WithProjectID(EmulatorProjectID),
	)
	if err != nil {
		t.Fatalf("failed to start pubsub emulator container: %v", err)
	}

	conn, err := grpc.NewClient(container.URI, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("failed to connect to pubsub emulator: %v", err)
	}

	return &TestPubSub{
		Container:     container,
		URI:           container.URI,
		Conn:          conn,
		ClientOptions: []option.ClientOption{option.WithGRPCConn(conn)},
	}
}

func (tps *TestPubSub) TeardownTestPubSub(t *testing.T) {
	t.Helper()

	if err := tps.Conn.Close(); err != nil {
		t.Logf("failed to close emulator connection: %v", err)
	}

	if err := tps.Container.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}
