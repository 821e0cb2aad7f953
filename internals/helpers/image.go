package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const maxImageWidth = 1600

var filenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SanitizeFilename remove tudo que não for letra, número, ponto, dash ou
// underscore do nome original do arquivo.
func SanitizeFilename(filename string) string {
	clean := filenameRe.ReplaceAllString(filename, "-")
	clean = strings.Trim(clean, "-.")
	if clean == "" {
		clean = "imagem"
	}
	return clean
}

// GenerateUniqueFilename prefixa o nome sanitizado com timestamp para evitar
// colisão entre uploads com o mesmo nome.
func GenerateUniqueFilename(original string) string {
	base := SanitizeFilename(original)
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)
	return fmt.Sprintf("%d-%s.webp", time.Now().UnixNano(), name)
}

// SaveUploadedImage decodifica a imagem do multipart, reduz se for muito
// grande e grava como webp em uploadDir. Retorna o caminho relativo público
// (ex.: /uploads/1700000000-foto.webp).
func SaveUploadedImage(fh *multipart.FileHeader, uploadDir string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("falha ao abrir imagem: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("arquivo não é uma imagem válida: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("falha ao criar diretório de upload: %w", err)
	}

	filename := GenerateUniqueFilename(fh.Filename)
	dst, err := os.Create(filepath.Join(uploadDir, filename))
	if err != nil {
		return "", fmt.Errorf("falha ao gravar imagem: %w", err)
	}
	defer dst.Close()

	if err := webp.Encode(dst, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("falha ao converter para webp: %w", err)
	}

	return "/uploads/" + filename, nil
}
