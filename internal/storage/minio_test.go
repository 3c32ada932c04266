package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	t.Run("bare endpoint gets a scheme", func(t *testing.T) {
		s := &ImageStore{bucket: "report-photos", publicEndpoint: "minio.example.com:9000"}
		assert.Equal(t,
			"http://minio.example.com:9000/report-photos/lost_reports/2026-08-23/abc.jpg",
			s.PublicURL("lost_reports/2026-08-23/abc.jpg"))
	})

	t.Run("ssl endpoint uses https", func(t *testing.T) {
		s := &ImageStore{bucket: "report-photos", publicEndpoint: "minio.example.com", useSSL: true}
		assert.Equal(t,
			"https://minio.example.com/report-photos/a.png",
			s.PublicURL("a.png"))
	})

	t.Run("endpoint with scheme kept as-is", func(t *testing.T) {
		s := &ImageStore{bucket: "report-photos", publicEndpoint: "https://cdn.example.com"}
		assert.Equal(t,
			"https://cdn.example.com/report-photos/a.png",
			s.PublicURL("a.png"))
	})
}

func TestKeyFromURL(t *testing.T) {
	s := &ImageStore{bucket: "report-photos", publicEndpoint: "minio.example.com"}

	t.Run("round trip", func(t *testing.T) {
		key := "found_reports/2026-08-23/xyz.jpg"
		assert.Equal(t, key, s.KeyFromURL(s.PublicURL(key)))
	})

	t.Run("foreign bucket yields empty", func(t *testing.T) {
		assert.Equal(t, "", s.KeyFromURL("http://minio.example.com/other-bucket/a.jpg"))
	})

	t.Run("unparseable url yields empty", func(t *testing.T) {
		assert.Equal(t, "", s.KeyFromURL("://not-a-url"))
	})
}
