package routes

import (
	"context"
	"fmt"

	"pharma_fieldops/internal/adapter/persistence/repository"
	"pharma_fieldops/internal/infrastructure/config"
	"pharma_fieldops/internal/infrastructure/database"
	"pharma_fieldops/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// openKeyValueStore connects the backend named by STORE_BACKEND.
func openKeyValueStore(ctx context.Context, cfg config.Config, log *zap.Logger) (interfaces.IKeyValueStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory, "":
		log.Warn("[store][routes] using in-memory store, data is lost on restart")
		return repository.NewMemoryKeyValueStore(), func() {}, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
			Endpoint:        cfg.DynamoDBEndpoint,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("dynamodb: %w", err)
		}
		log.Info("[store][routes] dynamodb connected", zap.String("table", cfg.KVTable))
		return repository.NewDynamoKeyValueStore(ddb, cfg.KVTable), func() {}, nil

	case config.BackendRedis:
		client, err := database.ConnectRedis(ctx, database.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		log.Info("[store][routes] redis connected", zap.String("addr", cfg.RedisAddr))
		return repository.NewRedisKeyValueStore(client, cfg.KVTable+":"), func() { _ = client.Close() }, nil

	case config.BackendMongo:
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, fmt.Errorf("mongo: %w", err)
		}
		log.Info("[store][routes] mongo connected", zap.String("database", cfg.MongoDatabase))
		closeFn := func() { _ = client.Disconnect(context.Background()) }
		return repository.NewMongoKeyValueStore(client.Database(cfg.MongoDatabase), cfg.KVTable), closeFn, nil
	}
	return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
}
