package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/sessionstore"
	"storefront/internal/pkg/websession"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisStoreIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	store     *sessionstore.RedisStore
}

func (suite *RedisStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.client.Ping(ctx).Err())

	suite.store, err = sessionstore.NewRedisStore(suite.client, "test:")
	suite.Require().NoError(err)
}

func (suite *RedisStoreIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		_ = suite.client.Close()
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RedisStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushDB(context.Background()).Err())
}

func (suite *RedisStoreIntegrationTestSuite) TestFind_Missing() {
	b, found, err := suite.store.FindCtx(context.Background(), "nope")
	suite.Require().NoError(err)
	suite.False(found)
	suite.Nil(b)
}

func (suite *RedisStoreIntegrationTestSuite) TestCommit_ThenFind() {
	ctx := context.Background()
	data := []byte("encoded session")

	suite.Require().NoError(suite.store.CommitCtx(ctx, "abc", data, time.Now().Add(time.Minute)))

	got, found, err := suite.store.FindCtx(ctx, "abc")
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal(data, got)

	ttl, err := suite.client.TTL(ctx, "test:abc").Result()
	suite.Require().NoError(err)
	suite.Greater(ttl, time.Duration(0))
	suite.LessOrEqual(ttl, time.Minute)
}

func (suite *RedisStoreIntegrationTestSuite) TestCommit_Replaces() {
	ctx := context.Background()
	expiry := time.Now().Add(time.Minute)
	suite.Require().NoError(suite.store.CommitCtx(ctx, "abc", []byte("first"), expiry))
	suite.Require().NoError(suite.store.CommitCtx(ctx, "abc", []byte("second"), expiry))

	got, _, err := suite.store.FindCtx(ctx, "abc")
	suite.Require().NoError(err)
	suite.Equal([]byte("second"), got)
}

func (suite *RedisStoreIntegrationTestSuite) TestCommit_PastExpiryIsGone() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.CommitCtx(ctx, "abc", []byte("stale"), time.Now().Add(-time.Second)))

	_, found, err := suite.store.FindCtx(ctx, "abc")
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *RedisStoreIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Commit("abc", []byte("1"), time.Now().Add(time.Minute)))
	suite.Require().NoError(suite.store.Delete("abc"))
	suite.Require().NoError(suite.store.DeleteCtx(ctx, "abc"))

	_, found, err := suite.store.Find("abc")
	suite.Require().NoError(err)
	suite.False(found)
}

func (suite *RedisStoreIntegrationTestSuite) TestSessionManager_RoundTrip() {
	ctx := context.Background()
	manager := websession.NewManager(suite.store, websession.Options{Lifetime: time.Minute})

	sess, err := websession.Load(ctx, manager, "")
	suite.Require().NoError(err)
	suite.Require().NoError(sess.Set("basket_id", "b-1"))
	key, _, err := sess.Commit()
	suite.Require().NoError(err)

	exists, err := suite.client.Exists(ctx, "test:"+key).Result()
	suite.Require().NoError(err)
	suite.Equal(int64(1), exists)

	restored, err := websession.Load(ctx, manager, key)
	suite.Require().NoError(err)
	var basketID string
	found, err := restored.Get("basket_id", &basketID)
	suite.Require().NoError(err)
	suite.True(found)
	suite.Equal("b-1", basketID)
}

func TestRedisStoreIntegration(t *testing.T) {
	suite.Run(t, new(RedisStoreIntegrationTestSuite))
}
