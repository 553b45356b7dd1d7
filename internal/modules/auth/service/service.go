package service

import (
	"crypto/subtle"
	"log"
	"sync"
	"time"

	"github.com/hdn-james/50years-ulaw-sub000/internal/config"
	platformservice "github.com/hdn-james/50years-ulaw-sub000/internal/platform/service"
	"github.com/hdn-james/50years-ulaw-sub000/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const defaultExpirationHours = 24

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// placeholderHash 用户名不匹配时也执行一次 bcrypt 比较，响应耗时与密码错误一致
func placeholderHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder"), bcrypt.DefaultCost)
	})
	return dummyHash
}

type Service struct {
	*platformservice.AppService
	now func() time.Time
}

func New(appService *platformservice.AppService) *Service {
	return &Service{AppService: appService, now: time.Now}
}

// Login 校验管理员账号并签发登录令牌，返回令牌与过期时间
func (s *Service) Login(username, password string) (string, time.Time, error) {
	cfg := config.Get()
	if cfg.Admin.Username == "" || cfg.Admin.PasswordHash == "" {
		log.Printf("⚠️ 未配置管理员账号，拒绝登录")
		return "", time.Time{}, platformservice.NewUnauthorizedError("用户名或密码错误")
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(cfg.Admin.Username)) == 1
	hash := []byte(cfg.Admin.PasswordHash)
	if !userOK {
		hash = placeholderHash()
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || !userOK {
		return "", time.Time{}, platformservice.NewUnauthorizedError("用户名或密码错误")
	}

	hours := cfg.JWT.ExpirationHours
	if hours <= 0 {
		hours = defaultExpirationHours
	}
	duration := time.Duration(hours) * time.Hour

	token, err := utils.GenerateLoginToken(cfg.Admin.Username, true, duration)
	if err != nil {
		log.Printf("❌ 签发登录令牌失败: %v", err)
		return "", time.Time{}, platformservice.NewInternalError("登录失败，请稍后重试")
	}
	return token, s.now().Add(duration), nil
}
