package service

import (
	"context"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"VideoTube/config"
	"VideoTube/pkg/log"
	"VideoTube/pkg/response"
	"VideoTube/pkg/snowflake"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"go.uber.org/zap"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var _ IMediaService = (*MediaService)(nil)

// IMediaService 媒体存储协作方：给临时文件换一个持久引用，或释放它
type IMediaService interface {
	UploadVideoFile(ctx context.Context, header *multipart.FileHeader) (string, *MediaMeta, error)
	UploadThumbnail(ctx context.Context, header *multipart.FileHeader) (string, error)
	Release(ctx context.Context, fileURL string) error
}

type MediaMeta struct {
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type MediaService struct {
	Client *oss.Client
	Conf   *config.OssConfig
}

func NewMediaService(client *oss.Client, conf *config.OssConfig) *MediaService {
	return &MediaService{Client: client, Conf: conf}
}

const (
	maxVideoSize     int64 = 1 << 30  // 1GB
	maxThumbnailSize int64 = 10 << 20 // 10MB
)

var allowedVideoMime = map[string]bool{
	"video/mp4":        true,
	"video/webm":       true,
	"video/quicktime":  true,
	"application/mp4":  true,
	"video/x-matroska": true,
}

// UploadVideoFile 上传视频文件，返回外链和基础元数据
func (s *MediaService) UploadVideoFile(ctx context.Context, header *multipart.FileHeader) (string, *MediaMeta, error) {
	if header == nil || header.Size <= 0 || header.Size > maxVideoSize {
		return "", nil, fmt.Errorf("%w: 视频文件缺失或超出大小限制", response.ErrValidation)
	}

	f, err := header.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedVideoMime[contentType] {
		return "", nil, fmt.Errorf("%w: 不支持的视频类型 %s", response.ErrValidation, contentType)
	}

	objectKey := fmt.Sprintf("video/%s/%d%s",
		time.Now().Format("2006/01/02"), snowflake.GenID(), ext(header.Filename, ".mp4"))

	if err := s.put(ctx, objectKey, f, contentType); err != nil {
		return "", nil, err
	}

	return s.publicURL(objectKey), &MediaMeta{
		Size:        header.Size,
		ContentType: contentType,
	}, nil
}

// UploadThumbnail 上传封面，读头校验 + 解析尺寸（含 webp）
func (s *MediaService) UploadThumbnail(ctx context.Context, header *multipart.FileHeader) (string, error) {
	if header == nil || header.Size <= 0 || header.Size > maxThumbnailSize {
		return "", fmt.Errorf("%w: 封面缺失或超出大小限制", response.ErrValidation)
	}

	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", fmt.Errorf("%w: 封面文件不可回读", response.ErrValidation)
	}

	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	allowed := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	if !allowed[contentType] {
		return "", fmt.Errorf("%w: 不支持的封面类型 %s", response.ErrValidation, contentType)
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	if _, _, err := image.DecodeConfig(seeker); err != nil {
		return "", fmt.Errorf("%w: 封面不是合法图片", response.ErrValidation)
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("thumbnail/%s/%d%s",
		time.Now().Format("2006/01/02"), snowflake.GenID(), ext(header.Filename, ".jpg"))

	if err := s.put(ctx, objectKey, seeker, contentType); err != nil {
		return "", err
	}
	return s.publicURL(objectKey), nil
}

// Release 释放外链指向的对象
func (s *MediaService) Release(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}
	key, err := s.objectKey(fileURL)
	if err != nil {
		return err
	}
	_, err = s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.Conf.Bucket),
		Key:    oss.Ptr(key),
	})
	if err != nil {
		log.L.Error("oss delete object failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("%w: %v", response.ErrUpstream, err)
	}
	return nil
}

func (s *MediaService) put(ctx context.Context, objectKey string, reader io.Reader, contentType string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.Conf.Bucket),
		Key:         oss.Ptr(objectKey),
		Body:        reader,
		ContentType: oss.Ptr(contentType),
	})
	if err != nil {
		log.L.Error("oss put object failed", zap.String("key", objectKey), zap.Error(err))
		return fmt.Errorf("%w: %v", response.ErrUpstream, err)
	}
	return nil
}

func (s *MediaService) publicURL(objectKey string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.Conf.Bucket, s.Conf.Endpoint, objectKey)
}

func (s *MediaService) objectKey(fileURL string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("%w: 非法的媒体引用 %q", response.ErrValidation, fileURL)
	}
	return strings.TrimPrefix(u.Path, "/"), nil
}

func ext(filename, fallback string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		return filename[i:]
	}
	return fallback
}
