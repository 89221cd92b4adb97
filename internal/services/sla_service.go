package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/duramedstack/duramed-sla/internal/api"
	"github.com/duramedstack/duramed-sla/internal/engine"
	slav1 "github.com/duramedstack/duramed-sla/internal/grpc/generated"
	"github.com/duramedstack/duramed-sla/internal/metrics"
	"github.com/duramedstack/duramed-sla/internal/models"
	"github.com/duramedstack/duramed-sla/internal/policy"
	"github.com/duramedstack/duramed-sla/internal/utils"
	"github.com/duramedstack/duramed-sla/internal/validate"
)

// TaskBridge abstracts the breach-to-task integration for testability.
type TaskBridge interface {
	EnsureSLATask(ctx context.Context, breach models.SlaBreach) (models.Task, error)
}

// SLAService implements the gRPC SlaEngine service.
type SLAService struct {
	slav1.UnimplementedSlaEngineServer

	logger        *slog.Logger
	evaluator     *engine.Evaluator
	bridge        TaskBridge
	validator     *validate.EventValidator
	specs         []models.SlaSpec
	policyVersion string
	latencies     *utils.LatencyTracker
}

// NewSLAService constructs the SLA service facade. The specs and version
// are the policy pack in force; empty values fall back to the defaults.
func NewSLAService(logger *slog.Logger, evaluator *engine.Evaluator, bridge TaskBridge, validator *validate.EventValidator, specs []models.SlaSpec, policyVersion string) *SLAService {
	if logger == nil {
		logger = slog.Default()
	}
	if specs == nil {
		specs = policy.Default()
	}
	if policyVersion == "" {
		policyVersion = policy.DefaultVersion
	}
	return &SLAService{
		logger:        logger,
		evaluator:     evaluator,
		bridge:        bridge,
		validator:     validator,
		specs:         specs,
		policyVersion: policyVersion,
		latencies:     utils.NewLatencyTracker(1024),
	}
}

// EvaluateOrder scores an order's event timeline against the policy in force.
func (s *SLAService) EvaluateOrder(ctx context.Context, req *slav1.EvaluateOrderRequest) (*slav1.SlaScore, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.evaluator == nil {
		return nil, status.Error(codes.FailedPrecondition, "evaluator not configured")
	}
	if len(req.GetEvents()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one event is required")
	}

	events, err := api.FromProtoEvents(req.GetEvents())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if s.validator != nil {
		if err := s.validator.ValidateEvents(events); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	specs := api.FromProtoSpecs(req.GetPolicy())
	version := req.GetPolicyVersion()
	if specs == nil {
		specs = s.specs
		if version == "" {
			version = s.policyVersion
		}
	}

	var evaluatedAt time.Time
	if req.GetEvaluatedAt() != nil {
		evaluatedAt = req.GetEvaluatedAt().AsTime()
	}

	start := time.Now()
	score, err := s.evaluator.Evaluate(events, specs, version, evaluatedAt)
	duration := time.Since(start)
	if err != nil {
		metrics.ObserveEvaluation(duration, metrics.OutcomeError)
		var malformed *utils.MalformedEventError
		var policyErr *policy.Error
		if errors.As(err, &malformed) || errors.As(err, &policyErr) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error("evaluation failed", slog.Any("error", err))
		return nil, status.Error(codes.Internal, fmt.Sprintf("evaluation failed: %v", err))
	}
	s.latencies.Observe(duration)
	metrics.ObserveEvaluation(duration, metrics.OutcomeSuccess)
	for _, breach := range score.Breaches {
		metrics.ObserveBreach(breach.Metric, breach.Credits)
	}
	if count := s.latencies.Count(); count >= 20 && count%20 == 0 {
		p95 := s.latencies.Percentile(95)
		s.logger.Info("evaluation latency", slog.Duration("p95", p95), slog.Int("samples", count))
	}

	s.logger.Debug("order evaluated",
		slog.String("order_id", score.OrderID),
		slog.Int("breaches", len(score.Breaches)),
		slog.Float64("credits", score.TotalCredits),
	)
	return api.ToProtoScore(score), nil
}

// GetPolicy returns the policy pack the service evaluates against.
func (s *SLAService) GetPolicy(ctx context.Context, req *slav1.GetPolicyRequest) (*slav1.PolicyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	return api.ToProtoPolicyResponse(s.specs, s.policyVersion), nil
}

// EnsureSlaTask idempotently creates the remediation task for a breach.
func (s *SLAService) EnsureSlaTask(ctx context.Context, req *slav1.EnsureTaskRequest) (*slav1.Task, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}
	if s.bridge == nil {
		return nil, status.Error(codes.FailedPrecondition, "task bridge not configured")
	}

	breach, err := api.FromProtoBreach(req.GetBreach())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	task, err := s.bridge.EnsureSLATask(ctx, breach)
	if err != nil {
		s.logger.Error("ensure task failed", slog.String("ref", breach.Ref()), slog.Any("error", err))
		return nil, status.Error(codes.Internal, "failed to ensure remediation task")
	}
	return api.ToProtoTask(task), nil
}

// LatencyP95 returns the current p95 evaluation latency.
func (s *SLAService) LatencyP95() time.Duration {
	if s.latencies == nil {
		return 0
	}
	return s.latencies.Percentile(95)
}
