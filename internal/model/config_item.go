package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConfigType discriminates the content purpose of a ConfigItem.
type ConfigType string

const (
	ConfigService        ConfigType = "service"
	ConfigTeam           ConfigType = "team"
	ConfigProcess        ConfigType = "process"
	ConfigArticle        ConfigType = "article"
	ConfigCoach          ConfigType = "coach"
	ConfigTestimonial    ConfigType = "testimonial"
	ConfigFAQ            ConfigType = "faq"
	ConfigHero           ConfigType = "hero"
	ConfigFeature        ConfigType = "feature"
	ConfigCallout        ConfigType = "callout"
	ConfigFooter         ConfigType = "footer"
	ConfigFooterSection  ConfigType = "footer_section"
	ConfigFooterLink     ConfigType = "footer_link"
	ConfigFooterSocial   ConfigType = "footer_social"
	ConfigServicePackage ConfigType = "service_package"
	ConfigSystemSettings ConfigType = "system_settings"
)

// Valid reports whether t is a known config type.
func (t ConfigType) Valid() bool {
	switch t {
	case ConfigService, ConfigTeam, ConfigProcess, ConfigArticle, ConfigCoach,
		ConfigTestimonial, ConfigFAQ, ConfigHero, ConfigFeature, ConfigCallout,
		ConfigFooter, ConfigFooterSection, ConfigFooterLink, ConfigFooterSocial,
		ConfigServicePackage, ConfigSystemSettings:
		return true
	}
	return false
}

// ConfigItem is one polymorphic content record. The common fields are
// meaningful for every type; Extra carries the per-type attributes.
type ConfigItem struct {
	ID          string       `json:"id"`
	Type        ConfigType   `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	Image       string       `json:"image,omitempty"`
	Order       int          `json:"order"`
	IsActive    bool         `json:"isActive"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Extra       *ConfigExtra `json:"extra,omitempty"`
}

func (c *ConfigItem) GetID() string   { return c.ID }
func (c *ConfigItem) SetID(id string) { c.ID = id }

// FooterLink is one navigation link inside a footer section.
type FooterLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// SocialLink is one social-media entry of the footer.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// ThemeSettings holds the color palette of the site or of one section.
type ThemeSettings struct {
	PrimaryColor    string `json:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BorderColor     string `json:"borderColor,omitempty"`
	LinkColor       string `json:"linkColor,omitempty"`
	HoverColor      string `json:"hoverColor,omitempty"`
	CopyrightColor  string `json:"copyrightColor,omitempty"`
}

// FontSettings holds typography overrides.
type FontSettings struct {
	FontFamily          string `json:"fontFamily,omitempty"`
	FontSize            string `json:"fontSize,omitempty"`
	FontWeight          string `json:"fontWeight,omitempty"`
	TitleFontSize       string `json:"titleFontSize,omitempty"`
	TitleFontWeight     string `json:"titleFontWeight,omitempty"`
	CopyrightFontSize   string `json:"copyrightFontSize,omitempty"`
	CopyrightFontWeight string `json:"copyrightFontWeight,omitempty"`
}

// LayoutSettings holds spacing and box styling of one section.
type LayoutSettings struct {
	Padding        string `json:"padding,omitempty"`
	Margin         string `json:"margin,omitempty"`
	BorderRadius   string `json:"borderRadius,omitempty"`
	BoxShadow      string `json:"boxShadow,omitempty"`
	BorderWidth    string `json:"borderWidth,omitempty"`
	BorderStyle    string `json:"borderStyle,omitempty"`
	TextAlign      string `json:"textAlign,omitempty"`
	TitleAlign     string `json:"titleAlign,omitempty"`
	CopyrightAlign string `json:"copyrightAlign,omitempty"`
	Gap            string `json:"gap,omitempty"`
	SectionGap     string `json:"sectionGap,omitempty"`
}

// SectionConfig is the per-section override tree used by the
// section_settings system record.
type SectionConfig struct {
	Theme     *ThemeSettings  `json:"theme,omitempty"`
	Font      *FontSettings   `json:"font,omitempty"`
	Layout    *LayoutSettings `json:"layout,omitempty"`
	CustomCSS string          `json:"customCSS,omitempty"`
}

// SectionToggles controls which home-page sections render.
type SectionToggles struct {
	ShowHero         bool `json:"showHero,omitempty"`
	ShowFeatures     bool `json:"showFeatures,omitempty"`
	ShowCallout      bool `json:"showCallout,omitempty"`
	ShowServices     bool `json:"showServices,omitempty"`
	ShowTeam         bool `json:"showTeam,omitempty"`
	ShowProcess      bool `json:"showProcess,omitempty"`
	ShowArticles     bool `json:"showArticles,omitempty"`
	ShowCoaches      bool `json:"showCoaches,omitempty"`
	ShowTestimonials bool `json:"showTestimonials,omitempty"`
	ShowFAQ          bool `json:"showFAQ,omitempty"`
	ShowBooking      bool `json:"showBooking,omitempty"`
}

// ConfigExtra carries the attributes whose meaning depends on the item
// type. Which fields are populated follows from ConfigItem.Type: coaches
// use Bio and Tags, FAQ entries Question and Answer, footer sections
// SectionTitle and Links, service packages the pricing block, and
// system_settings records the theme/font/layout trees. The embedded
// structs marshal flat so existing config files keep their shape.
type ConfigExtra struct {
	// content blocks
	Tags       []string `json:"tags,omitempty"`
	Role       string   `json:"role,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Question   string   `json:"question,omitempty"`
	Answer     string   `json:"answer,omitempty"`
	Icon       string   `json:"icon,omitempty"`
	ButtonText string   `json:"buttonText,omitempty"`
	ButtonLink string   `json:"buttonLink,omitempty"`

	// footer
	Logo               string       `json:"logo,omitempty"`
	CompanyName        string       `json:"companyName,omitempty"`
	CompanyDescription string       `json:"companyDescription,omitempty"`
	SectionTitle       string       `json:"sectionTitle,omitempty"`
	Links              []FooterLink `json:"links,omitempty"`
	SocialLinks        []SocialLink `json:"socialLinks,omitempty"`
	Copyright          string       `json:"copyright,omitempty"`

	// service packages
	PackageID string           `json:"packageId,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Duration  int              `json:"duration,omitempty"` // minutes
	Features  []string         `json:"features,omitempty"`
	Popular   bool             `json:"popular,omitempty"`
	Category  string           `json:"category,omitempty"` // individual, group, online, offline

	// system settings
	SettingType string `json:"settingType,omitempty"` // theme, layout, font, section_order, section_settings
	ThemeSettings
	FontSettings
	HeroFontSize     string   `json:"heroFontSize,omitempty"`
	HeroSubtitleSize string   `json:"heroSubtitleSize,omitempty"`
	HeroButtonSize   string   `json:"heroButtonSize,omitempty"`
	SectionOrder     []string `json:"sectionOrder,omitempty"`
	SectionSpacing   int      `json:"sectionSpacing,omitempty"`
	ContainerWidth   string   `json:"containerWidth,omitempty"`
	HeroPadding      string   `json:"heroPadding,omitempty"`
	SectionToggles
	SectionSettings map[string]SectionConfig `json:"sectionSettings,omitempty"`
}
