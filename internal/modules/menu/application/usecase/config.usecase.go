package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fuadmd/FalafelArwa/internal/modules/menu/application/port"
	"github.com/fuadmd/FalafelArwa/internal/modules/menu/domain"
	"github.com/fuadmd/FalafelArwa/internal/shared/normalization"
)

var (
	ErrInvalidStatus       = errors.New("invalid store status")
	ErrUnknownDesignKey    = errors.New("unknown design key")
	ErrSocialLinkNotFound  = errors.New("social link not found")
	ErrSliderIndex         = errors.New("slider index out of range")
	ErrUnknownImageTarget  = errors.New("unknown image target")
	ErrDraftImageNotStored = errors.New("image target is returned to the caller, not stored")
)

// ImageTarget names where an uploaded image lands.
type ImageTarget string

const (
	ImageLogo         ImageTarget = "logo"
	ImageFloating     ImageTarget = "floating"
	ImagePattern      ImageTarget = "pattern"
	ImageSlider       ImageTarget = "slider"
	ImageBottomSlider ImageTarget = "bottom-slider"
	ImageProduct      ImageTarget = "product"
	ImageCategory     ImageTarget = "category"
)

// ParseImageTarget validates a target name.
func ParseImageTarget(raw string) (ImageTarget, error) {
	switch target := ImageTarget(strings.ToLower(strings.TrimSpace(raw))); target {
	case ImageLogo, ImageFloating, ImagePattern, ImageSlider, ImageBottomSlider, ImageProduct, ImageCategory:
		return target, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownImageTarget, raw)
}

// StoresInConfig reports whether the target is written straight into the configuration.
func (t ImageTarget) StoresInConfig() bool {
	return t != ImageProduct && t != ImageCategory
}

// SocialLinkPatch carries optional field updates.
type SocialLinkPatch struct {
	Platform *string `json:"platform,omitempty"`
	URL      *string `json:"url,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ConfigEditor edits the restaurant configuration document.
type ConfigEditor struct {
	state *Container
}

func NewConfigEditor(state *Container) *ConfigEditor {
	return &ConfigEditor{state: state}
}

func (e *ConfigEditor) update(ctx context.Context, fn func(cfg *domain.RestaurantConfig) error) (domain.RestaurantConfig, error) {
	c := e.state
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.config.Clone()
	if err := fn(&next); err != nil {
		return c.config.Clone(), err
	}
	c.config = next
	return c.config.Clone(), c.persistLocked(ctx, port.KeyConfig)
}

// Replace swaps the whole document.
func (e *ConfigEditor) Replace(ctx context.Context, cfg domain.RestaurantConfig) (domain.RestaurantConfig, error) {
	return e.update(ctx, func(current *domain.RestaurantConfig) error {
		if _, ok := domain.NormalizeStoreStatus(string(cfg.Status)); !ok {
			cfg.Status = current.Status
		}
		for i := range cfg.SocialLinks {
			cfg.SocialLinks[i].Platform = domain.NormalizePlatform(string(cfg.SocialLinks[i].Platform))
		}
		*current = cfg.Clone()
		return nil
	})
}

// SetStatus changes the status and, when given, the auto hours.
func (e *ConfigEditor) SetStatus(ctx context.Context, status string, hours *domain.AutoHours) (domain.RestaurantConfig, error) {
	normalized, ok := domain.NormalizeStoreStatus(status)
	if !ok {
		return e.state.Config(), fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		cfg.Status = normalized
		if hours != nil {
			cfg.AutoHours = domain.AutoHours{Open: strings.TrimSpace(hours.Open), Close: strings.TrimSpace(hours.Close)}
		}
		return nil
	})
}

// UpdateDesign sets one design key. productName and categoryTitle accept an object of style fields.
func (e *ConfigEditor) UpdateDesign(ctx context.Context, key string, value any) (domain.RestaurantConfig, error) {
	return e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		return applyDesignValue(&cfg.Design, key, value)
	})
}

// UpdateDesignStyle sets a single sub-key of productName or categoryTitle.
func (e *ConfigEditor) UpdateDesignStyle(ctx context.Context, field, subKey string, value any) (domain.RestaurantConfig, error) {
	return e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		style, err := designStyle(&cfg.Design, field)
		if err != nil {
			return err
		}
		return applyStyleValue(style, subKey, value)
	})
}

func applyDesignValue(design *domain.DesignConfig, key string, value any) error {
	switch key {
	case "mainFont":
		design.MainFont = normalization.AsString(value)
	case "primaryTextColor":
		design.PrimaryTextColor = normalization.AsString(value)
	case "sliderLineColor":
		design.SliderLineColor = normalization.AsString(value)
	case "section1Bg":
		design.Section1Bg = normalization.AsString(value)
	case "section2Bg":
		design.Section2Bg = normalization.AsString(value)
	case "section3Bg":
		design.Section3Bg = normalization.AsString(value)
	case "backgroundImagePattern":
		design.BackgroundImagePattern = normalization.AsString(value)
	case "patternOpacity":
		v := normalization.AsFloat64(value)
		design.PatternOpacity = &v
	case "patternScale":
		v := normalization.AsFloat64(value)
		design.PatternScale = &v
	case "productName", "categoryTitle":
		style, _ := designStyle(design, key)
		fields := normalization.MapFromPayload(value)
		for sub, v := range fields {
			if err := applyStyleValue(style, sub, v); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDesignKey, key)
	}
	return nil
}

func designStyle(design *domain.DesignConfig, field string) (*domain.TextStyle, error) {
	switch field {
	case "productName":
		return &design.ProductName, nil
	case "categoryTitle":
		return &design.CategoryTitle, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDesignKey, field)
}

func applyStyleValue(style *domain.TextStyle, key string, value any) error {
	switch key {
	case "color":
		style.Color = normalization.AsString(value)
	case "weight":
		style.Weight = normalization.AsString(value)
	case "font":
		style.Font = normalization.AsString(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDesignKey, key)
	}
	return nil
}

// AddSocialLink appends an active facebook link with an empty url for staff to fill in.
func (e *ConfigEditor) AddSocialLink(ctx context.Context) (domain.SocialLink, error) {
	link := domain.SocialLink{ID: uuid.NewString(), Platform: domain.PlatformFacebook, IsActive: true}
	_, err := e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		cfg.SocialLinks = append(cfg.SocialLinks, link)
		return nil
	})
	return link, err
}

func (e *ConfigEditor) UpdateSocialLink(ctx context.Context, id string, patch SocialLinkPatch) (domain.SocialLink, error) {
	var updated domain.SocialLink
	_, err := e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		for i := range cfg.SocialLinks {
			link := &cfg.SocialLinks[i]
			if link.ID != id {
				continue
			}
			if patch.Platform != nil {
				link.Platform = domain.NormalizePlatform(*patch.Platform)
			}
			if patch.URL != nil {
				link.URL = strings.TrimSpace(*patch.URL)
			}
			if patch.IsActive != nil {
				link.IsActive = *patch.IsActive
			}
			updated = *link
			return nil
		}
		return ErrSocialLinkNotFound
	})
	return updated, err
}

func (e *ConfigEditor) RemoveSocialLink(ctx context.Context, id string) (domain.RestaurantConfig, error) {
	return e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		kept := make([]domain.SocialLink, 0, len(cfg.SocialLinks))
		for _, link := range cfg.SocialLinks {
			if link.ID != id {
				kept = append(kept, link)
			}
		}
		cfg.SocialLinks = kept
		return nil
	})
}

func sliderList(cfg *domain.RestaurantConfig, target ImageTarget) (*[]string, error) {
	switch target {
	case ImageSlider:
		return &cfg.SliderImages, nil
	case ImageBottomSlider:
		return &cfg.BottomSliderImages, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownImageTarget, target)
}

func (e *ConfigEditor) AddSliderImage(ctx context.Context, target ImageTarget, image string) (domain.RestaurantConfig, error) {
	return e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		list, err := sliderList(cfg, target)
		if err != nil {
			return err
		}
		*list = append(*list, image)
		return nil
	})
}

func (e *ConfigEditor) ReplaceSliderImage(ctx context.Context, target ImageTarget, index int, image string) (domain.RestaurantConfig, error) {
	return e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		list, err := sliderList(cfg, target)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(*list) {
			return ErrSliderIndex
		}
		(*list)[index] = image
		return nil
	})
}

func (e *ConfigEditor) RemoveSliderImage(ctx context.Context, target ImageTarget, index int) (domain.RestaurantConfig, error) {
	return e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		list, err := sliderList(cfg, target)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(*list) {
			return ErrSliderIndex
		}
		*list = append((*list)[:index:index], (*list)[index+1:]...)
		return nil
	})
}

// ApplyImage stores an encoded image into the configuration slot named by target.
// Slider targets append.
func (e *ConfigEditor) ApplyImage(ctx context.Context, target ImageTarget, image string) (domain.RestaurantConfig, error) {
	switch target {
	case ImageSlider, ImageBottomSlider:
		return e.AddSliderImage(ctx, target, image)
	case ImageProduct, ImageCategory:
		return e.state.Config(), ErrDraftImageNotStored
	}
	return e.update(ctx, func(cfg *domain.RestaurantConfig) error {
		switch target {
		case ImageLogo:
			cfg.Logo = image
		case ImageFloating:
			cfg.BottomFloatingImage = image
		case ImagePattern:
			cfg.Design.BackgroundImagePattern = image
		default:
			return fmt.Errorf("%w: %q", ErrUnknownImageTarget, target)
		}
		return nil
	})
}
