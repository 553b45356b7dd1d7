package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hdn-james/50years-ulaw-sub000/internal/utils"
)

// Local 本地文件系统存储，所有 key 都解析到 root 之下。
type Local struct {
	root string
}

// NewLocal 创建本地存储，根目录不存在时自动创建。
func NewLocal(root string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve upload root: %w", err)
	}
	if err := utils.EnsurePathNotSymlink(abs); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &Local{root: abs}, nil
}

// Root 返回存储根目录的绝对路径
func (l *Local) Root() string {
	return l.root
}

func (l *Local) resolve(key string) (string, string, error) {
	clean, err := utils.ValidateRelativePath(key)
	if err != nil {
		return "", "", err
	}
	full, err := utils.SecureJoin(l.root, filepath.FromSlash(clean))
	if err != nil {
		return "", "", err
	}
	return clean, full, nil
}

func (l *Local) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	clean, full, err := l.resolve(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}

	dir := filepath.Dir(full)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ObjectInfo{}, fmt.Errorf("create directory: %w", err)
	}

	// 先写临时文件再重命名，读者不会看到写了一半的文件
	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	n, err := io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("write file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return ObjectInfo{}, fmt.Errorf("chmod file: %w", err)
	}
	if err := os.Rename(tmpName, full); err != nil {
		return ObjectInfo{}, fmt.Errorf("rename file: %w", err)
	}
	tmpName = ""

	info := ObjectInfo{Key: clean, Size: n, ContentType: opt.ContentType}
	if st, err := os.Stat(full); err == nil {
		info.LastModified = st.ModTime()
	}
	return info, nil
}

func (l *Local) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	clean, full, err := l.resolve(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, ObjectInfo{}, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, ObjectInfo{}, ErrNotFound
	}
	return f, ObjectInfo{
		Key:          clean,
		Size:         st.Size(),
		ContentType:  utils.ContentTypeByFilename(clean),
		LastModified: st.ModTime(),
	}, nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_, full, err := l.resolve(key)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
