package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/otel"
	"courtside/infras/s3"
	"courtside/internal/domains/resource/model"
	"courtside/internal/domains/resource/model/dto"
	"courtside/internal/domains/resource/repository"
	"courtside/shared"
	"courtside/shared/cache"
	"courtside/shared/constant"
	gDto "courtside/shared/dto"
	"courtside/shared/failure"
	"courtside/shared/timezone"
)

const (
	cacheGetResource     = "resource:get"
	cacheGetAllResources = "resource:gets"
	cacheCountResources  = "resource:count"
)

type Resource interface {
	Get(ctx context.Context, id string) (dto.ResourceResponse, error)
	GetModel(ctx context.Context, id string) (model.Resource, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetResourcesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	HoursForDate(ctx context.Context, resourceID, date string) (model.Hours, error)
	PriceForDuration(ctx context.Context, resourceID string, durationMinutes int) (float64, error)
	Alternatives(ctx context.Context, resourceID string) ([]model.Resource, error)
	UploadPhoto(ctx context.Context, id string, req dto.UploadPhotoRequest) (dto.UploadPhotoResponse, error)
}

type serviceImpl struct {
	repo  repository.Resource
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Resource, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Resource {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ResourceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetResource, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for resource")

		return res, nil
	}

	resource, err := s.GetModel(ctx, id)
	if err != nil {
		return res, err
	}

	hours, err := s.repo.GetHours(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource hours")

		return res, fmt.Errorf("failed to get resource hours: %w", err)
	}

	prices, err := s.repo.GetPrices(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource prices")

		return res, fmt.Errorf("failed to get resource prices: %w", err)
	}

	res.FromModel(resource)
	res.AttachHours(hours)
	res.AttachPrices(prices)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resource to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetModel(ctx context.Context, id string) (res model.Resource, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetModel")
	defer scope.End()
	defer scope.TraceIfError(err)

	resource, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource")

		return res, fmt.Errorf("failed to get resource: %w", err)
	}

	if resource.ID == constant.Empty {
		return res, failure.NotFound("resource not found") // nolint:wrapcheck
	}

	return resource, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetResourcesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllResources, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for resources")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count resources")

		return res, fmt.Errorf("failed to count resources: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resources")

		return res, fmt.Errorf("failed to get resources: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resources to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count resources")

		return res, fmt.Errorf("failed to count resources: %w", err)
	}

	return res, nil
}

// HoursForDate resolves the operating window for the weekday of the given
// date. NotFound means the resource is closed that day.
func (s *serviceImpl) HoursForDate(ctx context.Context, resourceID, date string) (res model.Hours, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HoursForDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be in YYYY-MM-DD format") // nolint:wrapcheck
	}

	hours, err := s.repo.GetHoursForWeekday(ctx, resourceID, int(day.Weekday()))
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource hours")

		return res, fmt.Errorf("failed to get resource hours: %w", err)
	}

	if hours.ID == constant.Empty {
		return res, failure.NotFound("resource is closed on this day") // nolint:wrapcheck
	}

	return hours, nil
}

func (s *serviceImpl) PriceForDuration(ctx context.Context, resourceID string, durationMinutes int) (res float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PriceForDuration")
	defer scope.End()
	defer scope.TraceIfError(err)

	prices, err := s.repo.GetPrices(ctx, resourceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resource prices")

		return res, fmt.Errorf("failed to get resource prices: %w", err)
	}

	for _, price := range prices {
		if price.DurationMinutes == durationMinutes {
			return price.Amount, nil
		}
	}

	return res, failure.BadRequestFromString(fmt.Sprintf("no price tier for a duration of %d minutes", durationMinutes)) // nolint:wrapcheck
}

// Alternatives lists the other active resources of the same sport at the
// same establishment, for recurring availability fallback.
func (s *serviceImpl) Alternatives(ctx context.Context, resourceID string) (res []model.Resource, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Alternatives")
	defer scope.End()
	defer scope.TraceIfError(err)

	resource, err := s.GetModel(ctx, resourceID)
	if err != nil {
		return res, err
	}

	alternatives, err := s.repo.GetAlternatives(ctx, resource.EstablishmentID, resource.Sport, resourceID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get alternative resources")

		return res, fmt.Errorf("failed to get alternative resources: %w", err)
	}

	return alternatives, nil
}

func (s *serviceImpl) UploadPhoto(ctx context.Context, id string, req dto.UploadPhotoRequest) (res dto.UploadPhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPhoto")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	resource, err := s.GetModel(ctx, id)
	if err != nil {
		return res, err
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.PhotoFile, req.Photo, req.Photo.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	fields := map[string]any{
		model.FieldPhotoURL:      url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update resource photo")

		return res, fmt.Errorf("failed to update resource photo: %w", err)
	}

	if resource.PhotoURL != constant.Empty {
		go func() {
			c := context.WithoutCancel(ctx)

			objectName := s.s3.GetObjectNameFromURL(bucketName, resource.PhotoURL)
			if objectName == constant.Empty {
				return
			}

			if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
				log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete previous photo from S3")
			}
		}()
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetResource, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete resource from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllResources)
	}()

	res.PhotoURL = url

	return res, nil
}
