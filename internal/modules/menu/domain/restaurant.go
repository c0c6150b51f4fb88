package domain

import "strings"

// Platform identifies a social network for footer links.
type Platform string

const (
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformWhatsApp  Platform = "whatsapp"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformSnapchat  Platform = "snapchat"
	PlatformOther     Platform = "other"
)

var allowedPlatforms = map[string]Platform{
	string(PlatformFacebook):  PlatformFacebook,
	string(PlatformInstagram): PlatformInstagram,
	string(PlatformTwitter):   PlatformTwitter,
	string(PlatformWhatsApp):  PlatformWhatsApp,
	string(PlatformYouTube):   PlatformYouTube,
	string(PlatformTikTok):    PlatformTikTok,
	string(PlatformSnapchat):  PlatformSnapchat,
	string(PlatformOther):     PlatformOther,
}

// NormalizePlatform converts free text into the closed platform set; unknown values become "other".
func NormalizePlatform(raw string) Platform {
	if p, ok := allowedPlatforms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return p
	}
	return PlatformOther
}

// SocialLink is rendered in the footer only while active.
type SocialLink struct {
	ID       string   `json:"id"`
	Platform Platform `json:"platform"`
	URL      string   `json:"url"`
	IsActive bool     `json:"isActive"`
}

// TextStyle overrides how a class of storefront text is drawn.
type TextStyle struct {
	Color  string `json:"color"`
	Weight string `json:"weight"`
	Font   string `json:"font,omitempty"`
}

// DesignConfig holds cosmetic settings. Values are stored as given.
type DesignConfig struct {
	MainFont               string    `json:"mainFont"`
	PrimaryTextColor       string    `json:"primaryTextColor"`
	ProductName            TextStyle `json:"productName"`
	CategoryTitle          TextStyle `json:"categoryTitle"`
	SliderLineColor        string    `json:"sliderLineColor"`
	Section1Bg             string    `json:"section1Bg"`
	Section2Bg             string    `json:"section2Bg"`
	Section3Bg             string    `json:"section3Bg"`
	BackgroundImagePattern string    `json:"backgroundImagePattern,omitempty"`
	PatternOpacity         *float64  `json:"patternOpacity,omitempty"`
	PatternScale           *float64  `json:"patternScale,omitempty"`
}

// AutoHours is the daily window used when the status is auto. Values are "HH:MM".
type AutoHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// RestaurantConfig is the single branding, contact and status document of a deployment.
type RestaurantConfig struct {
	NameAr              string       `json:"name_ar"`
	NameEn              string       `json:"name_en"`
	Logo                string       `json:"logo"`
	Phone               string       `json:"phone"`
	LocationAr          string       `json:"location_ar"`
	LocationEn          string       `json:"location_en"`
	WhatsApp            string       `json:"whatsapp"`
	ShowFooterPhone     bool         `json:"showFooterPhone"`
	ShowFooterWhatsApp  bool         `json:"showFooterWhatsapp"`
	Status              StoreStatus  `json:"status"`
	AutoHours           AutoHours    `json:"autoHours"`
	Design              DesignConfig `json:"design"`
	SliderImages        []string     `json:"sliderImages"`
	BottomSliderImages  []string     `json:"bottomSliderImages"`
	BottomFloatingImage string       `json:"bottomFloatingImage,omitempty"`
	SocialLinks         []SocialLink `json:"socialLinks"`
}

// Name returns the localized restaurant name.
func (c RestaurantConfig) Name(lang Language) string {
	return pick(lang, c.NameAr, c.NameEn)
}

// Location returns the localized address line.
func (c RestaurantConfig) Location(lang Language) string {
	return pick(lang, c.LocationAr, c.LocationEn)
}

// ActiveSocialLinks returns only the links that should be rendered.
func (c RestaurantConfig) ActiveSocialLinks() []SocialLink {
	out := make([]SocialLink, 0, len(c.SocialLinks))
	for _, link := range c.SocialLinks {
		if link.IsActive {
			out = append(out, link)
		}
	}
	return out
}

// Clone deep-copies the slices and pointers so callers cannot alias container state.
func (c RestaurantConfig) Clone() RestaurantConfig {
	out := c
	out.SliderImages = cloneStrings(c.SliderImages)
	out.BottomSliderImages = cloneStrings(c.BottomSliderImages)
	if c.SocialLinks != nil {
		out.SocialLinks = append([]SocialLink{}, c.SocialLinks...)
	}
	out.Design.PatternOpacity = cloneFloat(c.Design.PatternOpacity)
	out.Design.PatternScale = cloneFloat(c.Design.PatternScale)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
