package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/go-redis/redis/v8"

	"github.com/abhisek/oasys/internal/attendance"
)

const (
	coursesKey      = "courses" // Set: all course IDs
	courseKeyPrefix = "course:" // Hash: course:{id}
	eventsKey       = "events"  // Set: all event IDs
	eventKeyPrefix  = "event:"  // Hash: event:{id}
)

// RedisRepo is a Repo backed by Redis sets and hashes.
type RedisRepo struct {
	client *redis.Client
}

var _ Repo = (*RedisRepo)(nil)

// OpenRedis connects to the Redis server at addr and verifies the connection.
func OpenRedis(ctx context.Context, addr string, db int) (*RedisRepo, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return &RedisRepo{client: client}, nil
}

func courseKey(id int) string {
	return courseKeyPrefix + strconv.Itoa(id)
}

func eventKey(id int) string {
	return eventKeyPrefix + strconv.Itoa(id)
}

func (r *RedisRepo) Courses(ctx context.Context) ([]attendance.Course, error) {
	ids, err := r.memberIDs(ctx, coursesKey)
	if err != nil {
		return nil, fmt.Errorf("list course ids: %w", err)
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, courseKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load courses: %w", err)
	}

	courses := make([]attendance.Course, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			// Set member without a hash; skip it.
			continue
		}
		c, err := courseFromHash(fields)
		if err != nil {
			return nil, fmt.Errorf("decode course %d: %w", ids[i], err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func (r *RedisRepo) Course(ctx context.Context, id int) (attendance.Course, error) {
	fields, err := r.client.HGetAll(ctx, courseKey(id)).Result()
	if err != nil {
		return attendance.Course{}, fmt.Errorf("load course %d: %w", id, err)
	}
	if len(fields) == 0 {
		return attendance.Course{}, fmt.Errorf("course %d: %w", id, ErrNotFound)
	}
	return courseFromHash(fields)
}

func (r *RedisRepo) SaveCourse(ctx context.Context, c attendance.Course) error {
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, coursesKey, c.ID)
	pipe.HSet(ctx, courseKey(c.ID), courseToHash(c))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save course %d: %w", c.ID, err)
	}
	return nil
}

func (r *RedisRepo) Events(ctx context.Context) ([]attendance.Event, error) {
	ids, err := r.memberIDs(ctx, eventsKey)
	if err != nil {
		return nil, fmt.Errorf("list event ids: %w", err)
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringStringMapCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, eventKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("load events: %w", err)
	}

	events := make([]attendance.Event, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		e, err := eventFromHash(fields)
		if err != nil {
			return nil, fmt.Errorf("decode event %d: %w", ids[i], err)
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *RedisRepo) SaveEvent(ctx context.Context, e attendance.Event) error {
	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, eventsKey, e.ID)
	pipe.HSet(ctx, eventKey(e.ID), eventToHash(e))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save event %d: %w", e.ID, err)
	}
	return nil
}

func (r *RedisRepo) Close() error {
	return r.client.Close()
}

// memberIDs returns the integer members of a set in ascending order.
func (r *RedisRepo) memberIDs(ctx context.Context, key string) ([]int, error) {
	members, err := r.client.SMembers(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}
	return parseIDs(members)
}

func parseIDs(members []string) ([]int, error) {
	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", m, err)
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func courseToHash(c attendance.Course) map[string]any {
	return map[string]any{
		"id":               c.ID,
		"name":             c.Name,
		"total_classes":    c.TotalClasses,
		"attended_classes": c.AttendedClasses,
	}
}

func courseFromHash(fields map[string]string) (attendance.Course, error) {
	var c attendance.Course
	var err error
	if c.ID, err = strconv.Atoi(fields["id"]); err != nil {
		return c, fmt.Errorf("id: %w", err)
	}
	c.Name = fields["name"]
	if c.TotalClasses, err = strconv.Atoi(fields["total_classes"]); err != nil {
		return c, fmt.Errorf("total_classes: %w", err)
	}
	if c.AttendedClasses, err = strconv.Atoi(fields["attended_classes"]); err != nil {
		return c, fmt.Errorf("attended_classes: %w", err)
	}
	return c, nil
}

func eventToHash(e attendance.Event) map[string]any {
	return map[string]any{
		"id":       e.ID,
		"name":     e.Name,
		"date":     e.Date,
		"category": string(attendance.ParseCategory(string(e.Category))),
	}
}

func eventFromHash(fields map[string]string) (attendance.Event, error) {
	var e attendance.Event
	id, err := strconv.Atoi(fields["id"])
	if err != nil {
		return e, fmt.Errorf("id: %w", err)
	}
	e.ID = id
	e.Name = fields["name"]
	e.Date = fields["date"]
	e.Category = attendance.ParseCategory(fields["category"])
	return e, nil
}
