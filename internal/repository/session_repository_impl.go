package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-medical-console/internal/domain/entity"
	domainRepo "go-medical-console/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "console_session:"
	fieldAccessToken = "access_token"
	fieldCurrentUser = "current_user"
)

type sessionRepository struct {
	rdb *redis.Client
}

func NewSessionRepository(rdb *redis.Client) domainRepo.SessionRepository {
	return &sessionRepository{rdb: rdb}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session, ttl time.Duration) error {
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	key := sessionKey(session.ID)
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fieldAccessToken, session.AccessToken, fieldCurrentUser, string(user))
		if ttl > 0 {
			pipe.Expire(ctx, key, ttl)
		}
		return nil
	})
	return err
}

func (r *sessionRepository) Find(ctx context.Context, id string) (*entity.Session, error) {
	fields, err := r.rdb.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, err
	}
	token := fields[fieldAccessToken]
	if token == "" {
		return nil, nil
	}

	session := &entity.Session{ID: id, AccessToken: token}
	if raw := fields[fieldCurrentUser]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &session.User); err != nil {
			return nil, fmt.Errorf("decode session user: %w", err)
		}
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, sessionKey(id)).Err()
}
