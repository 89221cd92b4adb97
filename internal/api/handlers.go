package api

import (
	"encoding/json"
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	slav1 "github.com/duramedstack/duramed-sla/internal/grpc/generated"
	"github.com/duramedstack/duramed-sla/internal/models"
	"github.com/duramedstack/duramed-sla/internal/utils"
)

// FromProtoEvents maps the gRPC event list into domain events, decoding
// each JSON payload.
func FromProtoEvents(protoEvents []*slav1.OrderEvent) ([]models.Event, error) {
	events := make([]models.Event, 0, len(protoEvents))
	for i, pe := range protoEvents {
		if pe == nil {
			return nil, fmt.Errorf("event %d is nil", i)
		}
		if pe.Topic == "" {
			return nil, fmt.Errorf("event %d missing topic", i)
		}

		payload := map[string]any{}
		if pe.PayloadJson != "" {
			if err := json.Unmarshal([]byte(pe.PayloadJson), &payload); err != nil {
				return nil, fmt.Errorf("event %d (%s) payload is not valid JSON: %w", i, pe.Topic, err)
			}
		}

		// Connectors posting raw JSON may carry the timestamp in the
		// payload instead of the proto field.
		var ts time.Time
		switch {
		case pe.Timestamp != nil:
			ts = pe.Timestamp.AsTime()
		default:
			raw, _ := payload["timestamp"].(string)
			parsed, err := utils.ParseEventTime(raw)
			if err != nil {
				return nil, fmt.Errorf("event %d (%s) missing timestamp: %w", i, pe.Topic, err)
			}
			ts = parsed
		}

		events = append(events, models.Event{
			Topic:     pe.Topic,
			Timestamp: ts,
			Payload:   payload,
		})
	}
	return events, nil
}

// FromProtoSpecs maps a proto policy override into domain specs. A nil or
// empty list means the caller wants the default policy.
func FromProtoSpecs(protoSpecs []*slav1.SlaSpec) []models.SlaSpec {
	if len(protoSpecs) == 0 {
		return nil
	}
	specs := make([]models.SlaSpec, 0, len(protoSpecs))
	for _, ps := range protoSpecs {
		if ps == nil {
			continue
		}
		specs = append(specs, models.SlaSpec{
			Name:      ps.Name,
			Metric:    ps.Metric,
			Threshold: ps.Threshold,
			Window:    ps.Window,
			CreditRule: models.CreditRule{
				PerBreach: ps.PerBreach,
			},
		})
	}
	return specs
}

// ToProtoScore converts a domain score into the gRPC representation.
func ToProtoScore(score models.SlaScore) *slav1.SlaScore {
	proto := &slav1.SlaScore{
		OrderId:       score.OrderID,
		TotalCredits:  score.TotalCredits,
		PolicyVersion: score.PolicyVersion,
		VolumeTier:    string(score.VolumeTier),
	}
	for _, metric := range score.Metrics {
		pm := &slav1.MetricResult{
			Metric:    metric.Metric,
			Threshold: metric.Threshold,
			Passed:    metric.Passed,
		}
		if metric.Observed != nil {
			observed := *metric.Observed
			pm.Observed = &observed
		}
		proto.Metrics = append(proto.Metrics, pm)
	}
	for _, breach := range score.Breaches {
		proto.Breaches = append(proto.Breaches, ToProtoBreach(breach))
	}
	return proto
}

// ToProtoBreach converts a domain breach into the gRPC representation.
func ToProtoBreach(breach models.SlaBreach) *slav1.SlaBreach {
	proto := &slav1.SlaBreach{
		SpecName:  breach.SpecName,
		Metric:    breach.Metric,
		OrderId:   breach.OrderID,
		Observed:  breach.Observed,
		Threshold: breach.Threshold,
		Credits:   breach.Credits,
		Details:   breach.Details,
	}
	if !breach.OccurredAt.IsZero() {
		proto.OccurredAt = timestamppb.New(breach.OccurredAt)
	}
	return proto
}

// FromProtoBreach maps a proto breach into the domain struct.
func FromProtoBreach(proto *slav1.SlaBreach) (models.SlaBreach, error) {
	if proto == nil {
		return models.SlaBreach{}, fmt.Errorf("breach is nil")
	}
	if proto.GetOrderId() == "" {
		return models.SlaBreach{}, fmt.Errorf("breach order_id is required")
	}
	if proto.GetMetric() == "" {
		return models.SlaBreach{}, fmt.Errorf("breach metric is required")
	}

	breach := models.SlaBreach{
		SpecName:  proto.GetSpecName(),
		Metric:    proto.GetMetric(),
		OrderID:   proto.GetOrderId(),
		Observed:  proto.GetObserved(),
		Threshold: proto.GetThreshold(),
		Credits:   proto.GetCredits(),
		Details:   proto.GetDetails(),
	}
	if proto.OccurredAt != nil {
		breach.OccurredAt = proto.OccurredAt.AsTime()
	}
	return breach, nil
}

// ToProtoTask converts a task-store record into the gRPC representation.
func ToProtoTask(task models.Task) *slav1.Task {
	proto := &slav1.Task{
		Id:            task.ID,
		Title:         task.Title,
		TaskType:      task.TaskType,
		Status:        task.Status,
		SlaRef:        task.SLARef,
		BreachReason:  task.BreachReason,
		FirstPassFlag: task.FirstPassFlag,
	}
	if len(task.Metadata) > 0 {
		proto.Metadata = make(map[string]string, len(task.Metadata))
		for k, v := range task.Metadata {
			proto.Metadata[k] = v
		}
	}
	if !task.CreatedAt.IsZero() {
		proto.CreatedAt = timestamppb.New(task.CreatedAt)
	}
	return proto
}

// ToProtoPolicyResponse maps a policy pack into the proto response.
func ToProtoPolicyResponse(specs []models.SlaSpec, version string) *slav1.PolicyResponse {
	resp := &slav1.PolicyResponse{PolicyVersion: version}
	for _, spec := range specs {
		resp.Specs = append(resp.Specs, &slav1.SlaSpec{
			Name:      spec.Name,
			Metric:    spec.Metric,
			Threshold: spec.Threshold,
			Window:    spec.Window,
			PerBreach: spec.CreditRule.PerBreach,
		})
	}
	return resp
}
