package characters

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/redis/go-redis/v9"

	"github.com/coldtimes/MapFantasai/internal/errors"
	redisclient "github.com/coldtimes/MapFantasai/internal/redis"
)

const (
	recordKeyPrefix   = "character:"
	submittedIndexKey = "character:index:submitted"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal record")
	}

	key := recordKeyPrefix + input.Record.ID
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to check existence")
		}
		if exists > 0 {
			return errors.AlreadyExistsf("record with ID %s already exists", input.Record.ID)
		}

		// Record and index are written in one MULTI/EXEC
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.ZAdd(ctx, submittedIndexKey, redis.Z{
				Score:  float64(input.Record.SubmittedAt.UnixMilli()),
				Member: input.Record.ID,
			})
			return nil
		})
		return err
	}, key)
	if err != nil {
		if stderrors.Is(err, redis.TxFailedErr) {
			return nil, errors.AlreadyExistsf("record with ID %s already exists", input.Record.ID)
		}
		if errors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to create record")
	}

	return &CreateOutput{Record: input.Record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	result, err := r.client.Get(ctx, recordKeyPrefix+input.ID).Bytes()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("record with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get record")
	}

	var record Record
	if err := json.Unmarshal(result, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record")
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	ids, err := r.client.ZRevRange(ctx, submittedIndexKey, 0, int64(listLimit(input.Limit))-1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list record IDs")
	}
	if len(ids) == 0 {
		return &ListOutput{Records: []*Record{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get records")
	}

	records := make([]*Record, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without data
			continue
		}
		var record Record
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal record %s", ids[i])
		}
		records = append(records, &record)
	}

	return &ListOutput{Records: records}, nil
}
