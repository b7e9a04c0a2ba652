package service

import (
	"context"
	"fmt"

	"jsoncheck/internal/modules/manifest/domain"
	"jsoncheck/internal/modules/manifest/dto"
	manifestout "jsoncheck/internal/modules/manifest/port/out"
)

type ManifestService struct {
	store    manifestout.ManifestStore
	encoder  manifestout.Encoder
	manifest domain.Manifest
}

func NewManifestService(store manifestout.ManifestStore, encoder manifestout.Encoder, manifest domain.Manifest) *ManifestService {
	return &ManifestService{store: store, encoder: encoder, manifest: manifest}
}

func (s *ManifestService) Render(_ context.Context, format string) (dto.RenderOutput, error) {
	f := domain.Format(format)
	if err := f.Validate(); err != nil {
		return dto.RenderOutput{}, err
	}
	if err := s.manifest.Validate(); err != nil {
		return dto.RenderOutput{}, err
	}
	raw, err := s.encoder.Encode(s.manifest, f)
	if err != nil {
		return dto.RenderOutput{}, fmt.Errorf("encode manifest: %w", err)
	}
	return dto.RenderOutput{Format: string(f), Content: string(raw)}, nil
}

func (s *ManifestService) Validate(ctx context.Context, dir string) (dto.ValidateOutput, error) {
	manifest, path, err := s.store.Load(ctx, dir)
	if err != nil {
		return dto.ValidateOutput{}, err
	}
	return dto.ValidateOutput{
		Path:     path,
		Name:     manifest.Name,
		Version:  manifest.Version,
		Problems: manifest.Problems(),
	}, nil
}
