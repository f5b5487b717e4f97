package infra_redis_session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/rottenpotatoes/internal/model"
)

const (
	sortSuffix   = "sort"
	noticeSuffix = "notice"

	fieldActive    = "active"
	fieldRatings   = "ratings"
	fieldDirPrefix = "dir:"
)

// Driver keeps per-session listing preferences and flash notices in redis.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(
	client *redis.Client,
	key string,
	ttl time.Duration,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) LoadSort(ctx context.Context, sessionID string) (model.SortState, error) {
	fields, err := d.client.WithContext(ctx).HGetAll(d.getFullKey(sessionID, sortSuffix)).Result()
	if err != nil {
		if err == redis.Nil {
			return model.NewSortState(), nil
		}
		return model.SortState{}, fmt.Errorf("failed to load sort state: %w", err)
	}

	return decodeSortState(fields), nil
}

func (d *Driver) SaveSort(ctx context.Context, sessionID string, state model.SortState) error {
	key := d.getFullKey(sessionID, sortSuffix)
	fields := encodeSortState(state)

	_, err := d.client.WithContext(ctx).TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.Del(key)
		if len(fields) > 0 {
			pipe.HMSet(key, fields)
			pipe.Expire(key, d.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save sort state: %w", err)
	}

	return nil
}

func (d *Driver) SetNotice(ctx context.Context, sessionID string, notice string) error {
	err := d.client.WithContext(ctx).Set(d.getFullKey(sessionID, noticeSuffix), notice, d.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set notice: %w", err)
	}

	return nil
}

// PopNotice returns the pending notice and forgets it.
func (d *Driver) PopNotice(ctx context.Context, sessionID string) (string, error) {
	key := d.getFullKey(sessionID, noticeSuffix)

	var get *redis.StringCmd
	_, err := d.client.WithContext(ctx).TxPipelined(func(pipe redis.Pipeliner) error {
		get = pipe.Get(key)
		pipe.Del(key)
		return nil
	})
	if err != nil && err != redis.Nil {
		return "", fmt.Errorf("failed to pop notice: %w", err)
	}

	val, err := get.Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to pop notice: %w", err)
	}

	return val, nil
}

func (d *Driver) getFullKey(sessionID, suffix string) string {
	if d.key != "" {
		return d.key + ":" + sessionID + ":" + suffix
	}
	return sessionID + ":" + suffix
}

func encodeSortState(state model.SortState) map[string]interface{} {
	fields := make(map[string]interface{}, len(state.Directions)+2)
	for column, order := range state.Directions {
		if order == model.NoOrder {
			continue
		}
		fields[fieldDirPrefix+string(column)] = string(order)
	}
	if state.Active != model.NoColumn {
		fields[fieldActive] = string(state.Active)
	}
	if len(state.Ratings) > 0 {
		fields[fieldRatings] = strings.Join(state.Ratings, ",")
	}
	return fields
}

// decodeSortState drops anything that is not a known column, order or rating.
func decodeSortState(fields map[string]string) model.SortState {
	state := model.NewSortState()
	for name, value := range fields {
		switch {
		case name == fieldActive:
			state.Active = model.ParseColumn(value)
		case name == fieldRatings:
			for _, r := range strings.Split(value, ",") {
				if model.IsKnownRating(r) {
					state.Ratings = append(state.Ratings, r)
				}
			}
		case strings.HasPrefix(name, fieldDirPrefix):
			column := model.ParseColumn(strings.TrimPrefix(name, fieldDirPrefix))
			order := model.ParseOrder(value)
			if column != model.NoColumn && order != model.NoOrder {
				state.Directions[column] = order
			}
		}
	}
	return state
}
