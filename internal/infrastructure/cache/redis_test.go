package cache

import (
	"context"
	"io"
	"net"
	"testing"

	"go-hospital-admin/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	mr := miniredis.RunT(t)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	client, err := NewRedisClient(context.Background(), config.RedisConfig{Host: host, Port: port, PoolSize: 2}, log)
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, 2, client.Options().PoolSize)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)
	mr.Close()

	_, err = NewRedisClient(context.Background(), config.RedisConfig{Host: host, Port: port}, log)
	assert.Error(t, err)
}
