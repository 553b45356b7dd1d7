package middleware

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"

	"github.com/redis/go-redis/v9"
)

const redisRateLimitTimeout = 500 * time.Millisecond

// tokenBucketScript 令牌桶：hash 中保存剩余令牌与上次补充时间（毫秒）
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local now = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(state[1])
local ts = tonumber(state[2])
if tokens == nil or ts == nil then
  tokens = burst
  ts = now
end

local elapsed = math.max(0, now - ts) / 1000
tokens = math.min(burst, tokens + elapsed * rate)

local allowed = 0
if tokens >= 1 then
  tokens = tokens - 1
  allowed = 1
end

redis.call('HSET', key, 'tokens', tokens, 'ts', now)
redis.call('PEXPIRE', key, ttl)
return allowed
`)

// allowByRedisRateLimit 基于 Redis 的分布式令牌桶。rps 或 burst 非正数时视为不限流。
func allowByRedisRateLimit(client *redis.Client, scope, rpsKey, burstKey, ip string, rps float64, burst int) (bool, error) {
	if rps <= 0 || burst <= 0 {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisRateLimitTimeout)
	defer cancel()

	// 桶在完全回满后再保留 1 秒
	ttl := int64(math.Ceil(float64(burst)/rps*1000)) + 1000
	key := service.RedisKey(scope, rpsKey, burstKey, ip)

	res, err := tokenBucketScript.Run(ctx, client, []string{key},
		strconv.FormatFloat(rps, 'f', -1, 64),
		burst,
		time.Now().UnixMilli(),
		ttl,
	).Int()
	if err != nil {
		return false, err
	}
	return res == 1, nil
}
