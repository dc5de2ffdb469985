package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docfill/docfill-go/minio"
	minioSDK "github.com/minio/minio-go/v7"
)

// UploadObject uploads content as an object to MinIO with the given
// content-type.
func UploadObject(ctx context.Context, objectName string, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// UploadBytes uploads a byte slice as an object.
var UploadBytes = func(ctx context.Context, objectName string, contentType string, content []byte) error {
	return UploadObject(ctx, objectName, contentType, bytes.NewReader(content), int64(len(content)))
}

// DownloadObject downloads object content from MinIO as a byte slice.
var DownloadObject = func(ctx context.Context, objectName string) ([]byte, error) {
	obj, err := minio.Client.GetObject(ctx, minio.BucketName, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return io.ReadAll(obj)
}

// DeleteObject deletes the specified object from the MinIO bucket.
var DeleteObject = func(ctx context.Context, objectName string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
