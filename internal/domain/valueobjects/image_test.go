package valueobjects

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodeTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to create test PNG: %v", err)
	}
	return buf.Bytes()
}

func encodeTestJPEG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("Failed to create test JPEG: %v", err)
	}
	return buf.Bytes()
}

func TestNewImageData(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "empty data should fail",
			data:    []byte{},
			wantErr: true,
		},
		{
			name:    "nil data should fail",
			data:    nil,
			wantErr: true,
		},
		{
			name:    "invalid image data should fail",
			data:    []byte{0x00, 0x01, 0x02},
			wantErr: true,
		},
		{
			name:    "jpeg is accepted",
			data:    encodeTestJPEG(t),
			wantErr: false,
		},
		{
			name:    "png is accepted",
			data:    encodeTestPNG(t),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageData(tt.data)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewImageData() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewImageDataFromBase64(t *testing.T) {
	jpegB64 := base64.StdEncoding.EncodeToString(encodeTestJPEG(t))

	tests := []struct {
		name      string
		encoded   string
		wantErr   bool
		wantEmpty bool
	}{
		{name: "plain base64", encoded: jpegB64},
		{name: "data url prefix", encoded: "data:image/jpeg;base64," + jpegB64},
		{name: "surrounding whitespace", encoded: "\n " + jpegB64 + " \n"},
		{name: "empty payload", encoded: "", wantErr: true, wantEmpty: true},
		{name: "data url without payload", encoded: "data:image/jpeg;base64,", wantErr: true, wantEmpty: true},
		{name: "not base64", encoded: "%%%not-base64%%%", wantErr: true},
		{name: "base64 but not an image", encoded: base64.StdEncoding.EncodeToString([]byte("hello")), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewImageDataFromBase64(tt.encoded)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewImageDataFromBase64() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantEmpty && !errors.Is(err, ErrEmptyImage) {
				t.Errorf("expected ErrEmptyImage, got %v", err)
			}
			if !tt.wantErr && !img.IsJPEG() {
				t.Errorf("expected JPEG, got %v", img.Format())
			}
		})
	}
}

func TestImageData_ToJPEG(t *testing.T) {
	imageData, err := NewImageData(encodeTestJPEG(t))
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}

	t.Run("JPEG to JPEG should return same instance", func(t *testing.T) {
		result, err := imageData.ToJPEG()
		if err != nil {
			t.Errorf("ToJPEG() error = %v", err)
		}
		if result != imageData {
			t.Errorf("Expected same instance for JPEG to JPEG conversion")
		}
	})

	t.Run("format should be JPEG", func(t *testing.T) {
		if imageData.Format() != JPEG {
			t.Errorf("Expected format JPEG, got %v", imageData.Format())
		}
		if imageData.MimeType() != "image/jpeg" {
			t.Errorf("Expected image/jpeg, got %s", imageData.MimeType())
		}
	})

	t.Run("PNG is re-encoded", func(t *testing.T) {
		pngData, err := NewImageData(encodeTestPNG(t))
		if err != nil {
			t.Fatalf("Failed to create PNG ImageData: %v", err)
		}
		converted, err := pngData.ToJPEG()
		if err != nil {
			t.Fatalf("ToJPEG() error = %v", err)
		}
		if !converted.IsJPEG() {
			t.Errorf("Expected JPEG after conversion, got %v", converted.Format())
		}
		if _, err := NewImageData(converted.Data()); err != nil {
			t.Errorf("converted bytes should decode: %v", err)
		}
	})
}
