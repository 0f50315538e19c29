package resolver

import (
	"context"
	"slices"

	"github.com/oneconcern/commonfiles/pkg/errors"
	"github.com/oneconcern/commonfiles/pkg/model"
	"github.com/oneconcern/commonfiles/pkg/resolver/status"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// GroupResult holds the resolved instances of one content group
type GroupResult struct {
	MD5       string                   `json:"md5" yaml:"md5"`
	Instances []model.ResolvedInstance `json:"instances" yaml:"instances"`
	Skipped   int                      `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// ResolveGroup resolves every instance of a group against the local instances of this group.
//
// Instances which cannot be resolved are skipped: the returned error gathers all these
// failures, and the resolved instances are returned alongside.
//
// A cancelled context interrupts the batch before the next instance, with status.ErrInterrupted.
func (r *Resolver) ResolveGroup(ctx context.Context, group model.InstanceGroup) (GroupResult, error) {
	result := GroupResult{
		MD5:       group.MD5,
		Instances: make([]model.ResolvedInstance, 0, len(group.Instances)),
	}
	candidates := group.Candidates()

	var skipped error
	for _, instance := range group.Instances {
		if err := ctx.Err(); err != nil {
			return result, multierr.Append(skipped, status.ErrInterrupted.Wrap(err))
		}

		resolved, err := r.Resolve(ctx, slices.Values(candidates), instance)
		if err != nil {
			r.l.Warn("unable to build instance: skipped",
				zap.String("md5", group.MD5),
				zap.Stringer("instance", instance),
				zap.Error(err),
			)
			result.Skipped++
			skipped = multierr.Append(skipped, err)
			continue
		}
		result.Instances = append(result.Instances, resolved)
	}

	return result, skipped
}

// ResolveGroups resolves all groups, in order.
//
// Skipped instances do not interrupt the batch: all their errors are returned together
// with the results. An interruption stops the batch.
func (r *Resolver) ResolveGroups(ctx context.Context, groups []model.InstanceGroup) ([]GroupResult, error) {
	results := make([]GroupResult, 0, len(groups))

	var errs error
	for _, group := range groups {
		result, err := r.ResolveGroup(ctx, group)
		results = append(results, result)
		errs = multierr.Append(errs, err)

		if errors.Is(err, status.ErrInterrupted) {
			break
		}
	}

	return results, errs
}
