// Package uploads gère les images produit : validation des extensions, envoi
// vers MinIO sous une clé opaque, et résolution des clés en URLs signées.
// Les enregistrements produit ne stockent que la clé, jamais l'URL.
package uploads

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"atelier_back_end/internal/database"
)

// Extensions d'image acceptées
var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^\w\-.]`)

// MaxCreateImages est le plafond d'images à la création d'un produit
const MaxCreateImages = 5

// SignedURLTTL est la durée de validité des URLs signées retournées aux vues
const SignedURLTTL = 24 * time.Hour

// IsAllowed vérifie que le nom de fichier porte une extension d'image acceptée
func IsAllowed(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	return allowedExtensions[strings.ToLower(filename[idx+1:])]
}

// SanitizeFilename neutralise les caractères dangereux (traversée de chemin)
func SanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return unsafeChars.ReplaceAllString(base, "_")
}

// Store envoie les fichiers valides vers MinIO et retourne leurs clés dans
// l'ordre d'entrée. maxCount ≤ 0 = sans limite. Les fichiers refusés ou vides
// sont ignorés. La clé est préfixée d'un horodatage unique : deux envois du
// même nom de fichier ne s'écrasent jamais.
func Store(ctx context.Context, files []*multipart.FileHeader, maxCount int) []string {
	bucket := os.Getenv("MINIO_BUCKET")
	keys := []string{}

	for _, header := range files {
		if maxCount > 0 && len(keys) >= maxCount {
			break
		}
		if header == nil || header.Filename == "" || header.Size == 0 {
			continue
		}
		if !IsAllowed(header.Filename) {
			log.Printf("⚠️ Fichier refusé (extension non autorisée): %s", header.Filename)
			continue
		}

		f, err := header.Open()
		if err != nil {
			log.Printf("⚠️ Impossible d'ouvrir %s: %v", header.Filename, err)
			continue
		}

		objectKey := fmt.Sprintf("products/%d_%s", time.Now().UnixNano(), SanitizeFilename(header.Filename))

		_, err = database.MinIO.PutObject(ctx, bucket, objectKey, f, header.Size,
			minio.PutObjectOptions{ContentType: header.Header.Get("Content-Type")})
		f.Close()
		if err != nil {
			log.Printf("❌ Erreur upload MinIO pour %s: %v", header.Filename, err)
			continue
		}

		keys = append(keys, objectKey)
	}

	return keys
}

// ResolveURL génère une URL signée à durée limitée pour une clé d'image
func ResolveURL(ctx context.Context, objectKey string, duration time.Duration) (string, error) {
	reqParams := make(url.Values)

	presignedURL, err := database.MinIO.PresignedGetObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		objectKey,
		duration,
		reqParams,
	)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}

// ResolveAll résout une liste de clés, en ignorant celles qui échouent
func ResolveAll(ctx context.Context, objectKeys []string) []string {
	urls := []string{}
	for _, k := range objectKeys {
		if k == "" {
			continue
		}
		if signed, err := ResolveURL(ctx, k, SignedURLTTL); err == nil {
			urls = append(urls, signed)
		}
	}
	return urls
}
