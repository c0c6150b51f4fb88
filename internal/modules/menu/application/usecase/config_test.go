package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
)

func TestUpdateDesign(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		key     string
		value   any
		check   func(domain.DesignConfig) bool
		wantErr error
	}{
		{name: "color", key: "section1Bg", value: "#000000", check: func(d domain.DesignConfig) bool { return d.Section1Bg == "#000000" }},
		{name: "numeric string opacity", key: "patternOpacity", value: "0.4", check: func(d domain.DesignConfig) bool { return *d.PatternOpacity == 0.4 }},
		{name: "number scale", key: "patternScale", value: float64(200), check: func(d domain.DesignConfig) bool { return *d.PatternScale == 200 }},
		{name: "style object", key: "productName", value: map[string]any{"color": "#fff", "weight": "400"}, check: func(d domain.DesignConfig) bool {
			return d.ProductName.Color == "#fff" && d.ProductName.Weight == "400" && d.ProductName.Font == "Cairo"
		}},
		{name: "unknown key", key: "sparkles", value: true, wantErr: ErrUnknownDesignKey},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContainer(t, newMemStore())
			cfg, err := NewConfigEditor(c).UpdateDesign(ctx, tc.key, tc.value)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil {
				if c.Config().Design.Section1Bg != "#0D403E" {
					t.Fatalf("failed update must not change design")
				}
				return
			}
			if !tc.check(cfg.Design) {
				t.Fatalf("design not updated: %+v", cfg.Design)
			}
		})
	}
}

func TestSocialLinks(t *testing.T) {
	c, _ := newTestContainer(t, newMemStore())
	editor := NewConfigEditor(c)
	ctx := context.Background()

	link, err := editor.AddSocialLink(ctx)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if link.Platform != domain.PlatformFacebook || !link.IsActive || link.URL != "" {
		t.Fatalf("unexpected default link %+v", link)
	}

	platform, active := "TikTok", false
	updated, err := editor.UpdateSocialLink(ctx, link.ID, SocialLinkPatch{Platform: &platform, IsActive: &active})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Platform != domain.PlatformTikTok || updated.IsActive {
		t.Fatalf("patch not applied: %+v", updated)
	}
	if got := len(c.Config().ActiveSocialLinks()); got != 3 {
		t.Fatalf("inactive link must be hidden, got %d active", got)
	}

	if _, err := editor.UpdateSocialLink(ctx, "missing", SocialLinkPatch{}); !errors.Is(err, ErrSocialLinkNotFound) {
		t.Fatalf("expected ErrSocialLinkNotFound, got %v", err)
	}
	cfg, err := editor.RemoveSocialLink(ctx, link.ID)
	if err != nil || len(cfg.SocialLinks) != 3 {
		t.Fatalf("remove failed: %v %d", err, len(cfg.SocialLinks))
	}
}

func TestSliderImages(t *testing.T) {
	c, _ := newTestContainer(t, newMemStore())
	editor := NewConfigEditor(c)
	ctx := context.Background()

	cfg, err := editor.AddSliderImage(ctx, ImageSlider, "data:image/png;base64,AA==")
	if err != nil || len(cfg.SliderImages) != 4 {
		t.Fatalf("append failed: %v %d", err, len(cfg.SliderImages))
	}
	cfg, err = editor.ReplaceSliderImage(ctx, ImageBottomSlider, 0, "x")
	if err != nil || cfg.BottomSliderImages[0] != "x" {
		t.Fatalf("replace failed: %v %+v", err, cfg.BottomSliderImages)
	}
	cfg, err = editor.RemoveSliderImage(ctx, ImageSlider, 0)
	if err != nil || len(cfg.SliderImages) != 3 || cfg.SliderImages[2] != "data:image/png;base64,AA==" {
		t.Fatalf("remove failed: %v %+v", err, cfg.SliderImages)
	}
	if _, err := editor.RemoveSliderImage(ctx, ImageSlider, 10); !errors.Is(err, ErrSliderIndex) {
		t.Fatalf("expected ErrSliderIndex, got %v", err)
	}
}

func TestApplyImageTargets(t *testing.T) {
	c, _ := newTestContainer(t, newMemStore())
	editor := NewConfigEditor(c)
	ctx := context.Background()

	if _, err := editor.ApplyImage(ctx, ImageLogo, "logo-uri"); err != nil {
		t.Fatalf("logo: %v", err)
	}
	if _, err := editor.ApplyImage(ctx, ImagePattern, "pattern-uri"); err != nil {
		t.Fatalf("pattern: %v", err)
	}
	cfg, err := editor.ApplyImage(ctx, ImageFloating, "floating-uri")
	if err != nil {
		t.Fatalf("floating: %v", err)
	}
	if cfg.Logo != "logo-uri" || cfg.Design.BackgroundImagePattern != "pattern-uri" || cfg.BottomFloatingImage != "floating-uri" {
		t.Fatalf("images not applied: %+v", cfg)
	}
	if _, err := editor.ApplyImage(ctx, ImageProduct, "p"); !errors.Is(err, ErrDraftImageNotStored) {
		t.Fatalf("expected ErrDraftImageNotStored, got %v", err)
	}
	if _, err := ParseImageTarget("banner"); !errors.Is(err, ErrUnknownImageTarget) {
		t.Fatalf("expected ErrUnknownImageTarget, got %v", err)
	}
}

func TestSetStatus(t *testing.T) {
	c, _ := newTestContainer(t, newMemStore())
	editor := NewConfigEditor(c)
	ctx := context.Background()

	cfg, err := editor.SetStatus(ctx, "AUTO", &domain.AutoHours{Open: "09:00", Close: "11:00"})
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if cfg.Status != domain.StatusAuto || cfg.AutoHours.Open != "09:00" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	// the test clock sits at 12:00
	if NewStorefront(c).IsOpen() {
		t.Fatalf("expected closed outside auto hours")
	}
	if _, err := editor.SetStatus(ctx, "sometimes", nil); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
