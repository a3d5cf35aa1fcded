package grpc

import (
	"errors"

	"github.com/DRSN-tech/movie-recommender/pkg/e"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func servingStatus(err error) healthpb.HealthCheckResponse_ServingStatus {
	switch {
	case err == nil:
		return healthpb.HealthCheckResponse_SERVING
	case errors.Is(err, e.ErrEngineNotReady):
		return healthpb.HealthCheckResponse_NOT_SERVING
	default:
		return healthpb.HealthCheckResponse_UNKNOWN
	}
}
