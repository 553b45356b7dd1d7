package dto

import (
	"errors"
	"net/url"
	"strings"

	"github.com/hdn-james/50years-ulaw-sub000/internal/utils"
)

var ErrEmptyAssetRef = errors.New("url、path、filename 至少提供一个")

// AssetRef 删除接口的请求体，兼容前端不同位置传来的 url / path / filename 三种写法
type AssetRef struct {
	URL      string `json:"url"`
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// Normalize 把三种写法统一为存储 key（相对上传根目录，以 "/" 分隔）。
// 优先级 url > path > filename；url 可以是绝对地址，只取其路径部分。
func (r AssetRef) Normalize(urlPrefix string) (string, error) {
	raw := ""
	switch {
	case strings.TrimSpace(r.URL) != "":
		u, err := url.Parse(strings.TrimSpace(r.URL))
		if err != nil {
			return "", utils.ErrPathTraversal
		}
		raw = u.Path
	case strings.TrimSpace(r.Path) != "":
		raw = strings.TrimSpace(r.Path)
	case strings.TrimSpace(r.Filename) != "":
		name := strings.TrimSpace(r.Filename)
		if strings.ContainsAny(name, `/\`) {
			return "", utils.ErrPathTraversal
		}
		return utils.ValidateRelativePath(name)
	default:
		return "", ErrEmptyAssetRef
	}

	key, ok := StripURLPrefix(raw, urlPrefix)
	if !ok {
		return "", utils.ErrPathTraversal
	}
	return utils.ValidateRelativePath(key)
}

// StripURLPrefix 去掉上传 URL 前缀（如 /uploads/）。
// 以 "/" 开头但不在前缀下的路径返回 false；不带前导 "/" 的相对路径原样返回。
func StripURLPrefix(p, urlPrefix string) (string, bool) {
	prefix := "/" + strings.Trim(urlPrefix, "/") + "/"
	if strings.HasPrefix(p, prefix) {
		return strings.TrimPrefix(p, prefix), true
	}
	if strings.HasPrefix(p, "/") {
		return "", false
	}
	return p, true
}
