package exercises

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=exercises

const (
	catalogCacheExpire = 60 * 60 // seconds

	cacheKeyAllExercises = "exercises::all"
	cacheKeyAllBodyParts = "bodyparts::all"
)

type exercisesRepo interface {
	List(ctx context.Context) ([]Exercise, error)
	Get(ctx context.Context, id string) (*Exercise, error)
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	Update(ctx context.Context, id string, update ExerciseUpdate) error
	Delete(ctx context.Context, id string) error
	ListBodyParts(ctx context.Context) ([]BodyPart, error)
}

// Catalog is a read-through cache in front of the exercises repo.
// Any mutation clears the whole cache.
type Catalog struct {
	repo  exercisesRepo
	cache *freecache.Cache
}

func NewCatalog(repo exercisesRepo, cacheSizeMB int) *Catalog {
	megabyte := 1024 * 1024
	return &Catalog{
		repo:  repo,
		cache: freecache.NewCache(cacheSizeMB * megabyte),
	}
}

func exerciseCacheKey(id string) string {
	return fmt.Sprintf("exercise::%s", id)
}

func (c *Catalog) List(ctx context.Context) ([]Exercise, error) {
	var cached []Exercise
	if c.fromCache(cacheKeyAllExercises, &cached) {
		return cached, nil
	}

	exercises, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	c.toCache(cacheKeyAllExercises, exercises)
	return exercises, nil
}

func (c *Catalog) Get(ctx context.Context, id string) (*Exercise, error) {
	var cached Exercise
	if c.fromCache(exerciseCacheKey(id), &cached) {
		return &cached, nil
	}

	exercise, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.toCache(exerciseCacheKey(id), exercise)
	return exercise, nil
}

func (c *Catalog) ListBodyParts(ctx context.Context) ([]BodyPart, error) {
	var cached []BodyPart
	if c.fromCache(cacheKeyAllBodyParts, &cached) {
		return cached, nil
	}

	bodyParts, err := c.repo.ListBodyParts(ctx)
	if err != nil {
		return nil, err
	}

	c.toCache(cacheKeyAllBodyParts, bodyParts)
	return bodyParts, nil
}

func (c *Catalog) Add(ctx context.Context, exercise Exercise) (*Exercise, error) {
	added, err := c.repo.Add(ctx, exercise)
	if err != nil {
		return nil, err
	}
	c.cache.Clear()
	return added, nil
}

func (c *Catalog) Update(ctx context.Context, id string, update ExerciseUpdate) error {
	if err := c.repo.Update(ctx, id, update); err != nil {
		return err
	}
	c.cache.Clear()
	return nil
}

func (c *Catalog) Delete(ctx context.Context, id string) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		return err
	}
	c.cache.Clear()
	return nil
}

func (c *Catalog) fromCache(key string, dest any) bool {
	cachedBytes, err := c.cache.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(cachedBytes, dest); err != nil {
		log.Errorf("catalog cache: unmarshal %s: %s", key, err)
		return false
	}
	log.Tracef("catalog cache: hit for %s", key)
	return true
}

func (c *Catalog) toCache(key string, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("catalog cache: marshal %s: %s", key, err)
		return
	}
	if err := c.cache.Set([]byte(key), valueBytes, catalogCacheExpire); err != nil {
		log.Errorf("catalog cache: set %s: %s", key, err)
	}
}
