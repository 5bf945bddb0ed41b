package storage

import (
	"fmt"
	"log"

	"backend/internal/model"

	"github.com/shopspring/decimal"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// SeedDefaultConfigs populates the default content catalog when, and only
// when, the config store is completely empty. Safe to call on every cold
// start: a non-empty store is left untouched. Returns how many items were
// inserted.
func SeedDefaultConfigs(s *ConfigStore) (int, error) {
	if s.Count() > 0 {
		log.Printf("config data already present (%d items), skipping seed", s.Count())
		return 0, nil
	}
	items := DefaultConfigItems()
	log.Printf("seeding %d default config items", len(items))
	for _, item := range items {
		if _, err := s.CreateConfig(item); err != nil {
			return 0, fmt.Errorf("seed config %q: %w", item.Title, err)
		}
	}
	return len(items), nil
}

// DefaultConfigItems is the built-in content catalog: marketing sections,
// coaches, FAQ, footer, service packages and the system-settings defaults.
func DefaultConfigItems() []model.ConfigItem {
	return []model.ConfigItem{
		{
			Type: model.ConfigService, Title: "个人心理咨询", Description: "一对一专业心理辅导",
			Content: "提供专业的个人心理咨询服务，帮助您解决心理困扰，提升生活质量。",
			Order:   1, IsActive: true,
		},
		{
			Type: model.ConfigService, Title: "情感关系咨询", Description: "改善人际关系和情感问题",
			Content: "专业的情感关系咨询，帮助您建立健康的人际关系和情感连接。",
			Order:   2, IsActive: true,
		},
		{
			Type: model.ConfigTeam, Title: "张心理师", Description: "资深心理咨询师",
			Content: "拥有10年心理咨询经验，擅长情绪管理和人际关系咨询。",
			Order:   1, IsActive: true,
		},
		{
			Type: model.ConfigProcess, Title: "预约咨询", Description: "在线预约专业心理咨询",
			Content: "通过我们的平台轻松预约心理咨询师，选择合适的时间进行咨询。",
			Order:   1, IsActive: true,
		},
		{
			Type: model.ConfigArticle, Title: "心理健康的重要性", Description: "了解心理健康对生活的影响",
			Content: "心理健康是整体健康的重要组成部分，影响着我们的思维、情感和行为。",
			Order:   1, IsActive: true,
		},
		{
			Type: model.ConfigCoach, Title: "林晨", Description: "国家二级心理咨询师 / 青年成长教练",
			Content: "温暖稳重的陪伴风格，擅长帮助来访者建立自我支持。",
			Order:   1, IsActive: true,
			Extra: &model.ConfigExtra{
				Bio:  "温暖稳重的陪伴风格，擅长帮助来访者建立自我支持。",
				Tags: []string{"情绪管理", "自我探索", "关系沟通"},
			},
		},
		{
			Type: model.ConfigCoach, Title: "苏宁", Description: "职业发展教练 / ICF ACC",
			Content: "以目标为导向，兼顾情绪与行动，助你稳步成长。",
			Order:   2, IsActive: true,
			Extra: &model.ConfigExtra{
				Bio:  "以目标为导向，兼顾情绪与行动，助你稳步成长。",
				Tags: []string{"职业规划", "目标达成", "压力管理"},
			},
		},
		{
			Type: model.ConfigCoach, Title: "张一", Description: "亲密关系教练 / 婚恋沟通",
			Content: "关注关系中的真实需要，促进更清晰的表达与理解。",
			Order:   3, IsActive: true,
			Extra: &model.ConfigExtra{
				Bio:  "关注关系中的真实需要，促进更清晰的表达与理解。",
				Tags: []string{"亲密关系", "沟通技巧", "自我价值"},
			},
		},
		{
			Type: model.ConfigTestimonial, Title: "Y.同学", Description: "大学生",
			Content: "每次结束都更有力量，开始愿意表达真实的需要，也更理解自己了。",
			Order:   1, IsActive: true,
			Extra: &model.ConfigExtra{Role: "大学生"},
		},
		{
			Type: model.ConfigTestimonial, Title: "L.同事", Description: "设计师",
			Content: "焦虑明显减少，能把注意力放回当下，逐步建立稳定节奏。",
			Order:   2, IsActive: true,
			Extra: &model.ConfigExtra{Role: "设计师"},
		},
		{
			Type: model.ConfigTestimonial, Title: "C.朋友", Description: "产品经理",
			Content: "在职业困惑期得到很大支持，行动计划也更清晰可行。",
			Order:   3, IsActive: true,
			Extra: &model.ConfigExtra{Role: "产品经理"},
		},
		{
			Type: model.ConfigFAQ, Title: "一次多长时间？", Description: "咨询时长说明",
			Content: "单次约50分钟，首次会根据你的目标进行评估和计划制定。",
			Order:   1, IsActive: true,
			Extra: &model.ConfigExtra{
				Question: "一次多长时间？",
				Answer:   "单次约50分钟，首次会根据你的目标进行评估和计划制定。",
			},
		},
		{
			Type: model.ConfigFAQ, Title: "线上还是线下？", Description: "咨询方式说明",
			Content: "均可。我们提供视频与线下空间，视你的方便选择。",
			Order:   2, IsActive: true,
			Extra: &model.ConfigExtra{
				Question: "线上还是线下？",
				Answer:   "均可。我们提供视频与线下空间，视你的方便选择。",
			},
		},
		{
			Type: model.ConfigFAQ, Title: "价格如何？", Description: "价格说明",
			Content: "根据教练资历与服务形式，区间为¥299-¥899/次。",
			Order:   3, IsActive: true,
			Extra: &model.ConfigExtra{
				Question: "价格如何？",
				Answer:   "根据教练资历与服务形式，区间为¥299-¥899/次。",
			},
		},
		{
			Type: model.ConfigFAQ, Title: "隐私如何保障？", Description: "隐私保护说明",
			Content: "遵循严格保密原则，除法律要求或安全风险外，不会泄露任何信息。",
			Order:   4, IsActive: true,
			Extra: &model.ConfigExtra{
				Question: "隐私如何保障？",
				Answer:   "遵循严格保密原则，除法律要求或安全风险外，不会泄露任何信息。",
			},
		},
		{
			Type: model.ConfigFeature, Title: "严选教练", Description: "专业资质与经验审核，持续督导与成长。",
			Content: "我们严格筛选每一位心理教练，确保他们具备专业资质和丰富经验。",
			Order:   1, IsActive: true,
			Extra: &model.ConfigExtra{Icon: "/icons/heart.svg"},
		},
		{
			Type: model.ConfigFeature, Title: "隐私保障", Description: "全程加密与隐私保护，安全可信赖。",
			Content: "我们采用先进的加密技术，确保您的隐私信息得到充分保护。",
			Order:   2, IsActive: true,
			Extra: &model.ConfigExtra{Icon: "/icons/shield.svg"},
		},
		{
			Type: model.ConfigFeature, Title: "灵活预约", Description: "多时段可选，线上线下均可，支持随时改期。",
			Content: "提供灵活的预约时间选择，支持线上和线下两种咨询方式。",
			Order:   3, IsActive: true,
			Extra: &model.ConfigExtra{Icon: "/icons/calendar.svg"},
		},
		{
			Type: model.ConfigCallout, Title: "让我们一起，走向更有力量的明天",
			Description: "适合情绪压力、关系困扰、自我探索、职业发展等多种主题。",
			Content:     "年轻、温暖、具备实效的心理教练服务。",
			Order:       1, IsActive: true,
			Extra: &model.ConfigExtra{ButtonText: "立即预约", ButtonLink: "#book"},
		},
		{
			Type: model.ConfigFooter, Title: "心青心理教练", Description: "温馨、青春、正能量的心理成长伙伴",
			Content: "专业的心理教练服务，帮助您实现更好的自己。",
			Order:   1, IsActive: true,
			Extra: &model.ConfigExtra{
				Logo:               "心",
				CompanyName:        "心青心理教练",
				CompanyDescription: "温馨、青春、正能量的心理成长伙伴。",
				Copyright:          "© 2025 心青心理教练 · All rights reserved.",
			},
		},
		{
			Type: model.ConfigFooterSection, Title: "服务", Description: "我们的服务项目",
			Content: "提供专业的心理教练服务",
			Order:   1, IsActive: true,
			Extra: &model.ConfigExtra{
				SectionTitle: "服务",
				Links: []model.FooterLink{
					{Text: "个体教练", URL: "#services"},
					{Text: "关系议题", URL: "#services"},
					{Text: "职场发展", URL: "#services"},
				},
			},
		},
		{
			Type: model.ConfigFooterSection, Title: "支持", Description: "用户支持信息",
			Content: "为用户提供全面的支持服务",
			Order:   2, IsActive: true,
			Extra: &model.ConfigExtra{
				SectionTitle: "支持",
				Links: []model.FooterLink{
					{Text: "隐私政策", URL: "/privacy"},
					{Text: "用户条款", URL: "/terms"},
					{Text: "联系客服", URL: "/contact"},
				},
			},
		},
		{
			Type: model.ConfigFooterSocial, Title: "关注我们", Description: "社交媒体链接",
			Content: "关注我们的社交媒体账号",
			Order:   1, IsActive: true,
			Extra: &model.ConfigExtra{
				SectionTitle: "关注我们",
				SocialLinks: []model.SocialLink{
					{Platform: "WeChat", URL: "#", Icon: "微"},
					{Platform: "Weibo", URL: "#", Icon: "博"},
				},
			},
		},
		{
			Type: model.ConfigServicePackage, Title: "基础咨询", Description: "适合初次接触心理教练的用户",
			Content: "专业心理评估，个性化成长建议，基础情绪管理指导，后续跟进计划",
			Order:   1, IsActive: true,
			Extra: &model.ConfigExtra{
				PackageID: "basic", Price: price(299), Duration: 50,
				Features: []string{"专业心理评估", "个性化成长建议", "基础情绪管理指导", "后续跟进计划"},
				Category: "individual",
			},
		},
		{
			Type: model.ConfigServicePackage, Title: "标准套餐", Description: "最受欢迎的心理教练服务",
			Content: "深度心理分析，个性化成长方案，情绪管理技巧训练，人际关系指导，3次免费跟进",
			Order:   2, IsActive: true,
			Extra: &model.ConfigExtra{
				PackageID: "standard", Price: price(499), Duration: 60,
				Features: []string{"深度心理分析", "个性化成长方案", "情绪管理技巧训练", "人际关系指导", "3次免费跟进"},
				Popular:  true,
				Category: "individual",
			},
		},
		{
			Type: model.ConfigServicePackage, Title: "高级套餐", Description: "全方位心理成长服务",
			Content: "全面心理评估，定制化成长计划，高级情绪管理技巧，职业发展指导，亲密关系咨询，5次免费跟进，专属成长档案",
			Order:   3, IsActive: true,
			Extra: &model.ConfigExtra{
				PackageID: "premium", Price: price(799), Duration: 90,
				Features: []string{"全面心理评估", "定制化成长计划", "高级情绪管理技巧", "职业发展指导", "亲密关系咨询", "5次免费跟进", "专属成长档案"},
				Category: "individual",
			},
		},
		{
			Type: model.ConfigServicePackage, Title: "团体咨询", Description: "小组形式的心灵成长",
			Content: "小组互动学习，同伴支持系统，集体成长活动，经验分享交流",
			Order:   4, IsActive: true,
			Extra: &model.ConfigExtra{
				PackageID: "group", Price: price(199), Duration: 120,
				Features: []string{"小组互动学习", "同伴支持系统", "集体成长活动", "经验分享交流"},
				Category: "group",
			},
		},
		{
			Type: model.ConfigServicePackage, Title: "在线咨询", Description: "便捷的线上心理服务",
			Content: "视频/语音咨询，在线心理评估，数字化成长记录，灵活时间安排",
			Order:   5, IsActive: true,
			Extra: &model.ConfigExtra{
				PackageID: "online", Price: price(399), Duration: 50,
				Features: []string{"视频/语音咨询", "在线心理评估", "数字化成长记录", "灵活时间安排"},
				Category: "online",
			},
		},
		{
			Type: model.ConfigSystemSettings, Title: "主题设置", Description: "网站主题颜色配置",
			Content: "配置网站的主色调、辅助色、背景色等主题设置",
			Order:   1, IsActive: true,
			Extra: &model.ConfigExtra{
				SettingType: "theme",
				ThemeSettings: model.ThemeSettings{
					PrimaryColor:    "#ff8ba7",
					SecondaryColor:  "#ffc3a0",
					BackgroundColor: "#ffffff",
					TextColor:       "#1f2937",
				},
			},
		},
		{
			Type: model.ConfigSystemSettings, Title: "字体设置", Description: "网站字体配置",
			Content: "配置网站的字体族、字体大小、字体粗细等设置",
			Order:   2, IsActive: true,
			Extra: &model.ConfigExtra{
				SettingType: "font",
				FontSettings: model.FontSettings{
					FontFamily: "Plus Jakarta Sans",
					FontSize:   "16px",
					FontWeight: "400",
				},
			},
		},
		{
			Type: model.ConfigSystemSettings, Title: "布局设置", Description: "网站布局配置",
			Content: "配置网站的容器宽度、板块间距等布局设置",
			Order:   3, IsActive: true,
			Extra: &model.ConfigExtra{
				SettingType:    "layout",
				ContainerWidth: "1200px",
				SectionSpacing: 24,
			},
		},
		{
			Type: model.ConfigSystemSettings, Title: "板块设置", Description: "首页板块显示和顺序配置",
			Content: "配置首页各个板块的显示状态和显示顺序",
			Order:   4, IsActive: true,
			Extra: &model.ConfigExtra{
				SettingType: "section_order",
				SectionOrder: []string{
					"hero", "features", "callout", "services", "team", "process",
					"articles", "coaches", "testimonials", "faq", "booking",
				},
				SectionToggles: model.SectionToggles{
					ShowHero: true, ShowFeatures: true, ShowCallout: true,
					ShowServices: true, ShowTeam: true, ShowProcess: true,
					ShowArticles: true, ShowCoaches: true, ShowTestimonials: true,
					ShowFAQ: true, ShowBooking: true,
				},
			},
		},
		{
			Type: model.ConfigSystemSettings, Title: "板块单独设置", Description: "每个板块的独立主题、字体、布局配置",
			Content: "为每个板块配置独立的主题颜色、字体设置、布局样式等",
			Order:   5, IsActive: true,
			Extra: &model.ConfigExtra{
				SettingType: "section_settings",
				SectionSettings: map[string]model.SectionConfig{
					"hero": {
						Theme: &model.ThemeSettings{
							PrimaryColor:    "#ff8ba7",
							SecondaryColor:  "#ffc3a0",
							BackgroundColor: "#fffaf7",
							TextColor:       "#1f2937",
						},
						Font: &model.FontSettings{
							FontFamily: "Plus Jakarta Sans",
							FontSize:   "18px",
							FontWeight: "600",
						},
						Layout: &model.LayoutSettings{
							Padding: "80px 0", Margin: "0", BorderRadius: "0", BoxShadow: "none",
						},
					},
					"features": {
						Theme: &model.ThemeSettings{
							PrimaryColor:    "#ff8ba7",
							SecondaryColor:  "#ffc3a0",
							BackgroundColor: "#ffffff",
							TextColor:       "#1f2937",
						},
						Font: &model.FontSettings{
							FontFamily: "Plus Jakarta Sans",
							FontSize:   "16px",
							FontWeight: "400",
						},
						Layout: &model.LayoutSettings{
							Padding: "64px 0", Margin: "0", BorderRadius: "16px",
							BoxShadow: "0 4px 6px -1px rgba(0, 0, 0, 0.1)",
						},
					},
					"callout": {
						Theme: &model.ThemeSettings{
							PrimaryColor:    "#ff8ba7",
							SecondaryColor:  "#ffc3a0",
							BackgroundColor: "#fef3c7",
							TextColor:       "#1f2937",
						},
						Font: &model.FontSettings{
							FontFamily: "Plus Jakarta Sans",
							FontSize:   "18px",
							FontWeight: "700",
						},
						Layout: &model.LayoutSettings{
							Padding: "64px 0", Margin: "0", BorderRadius: "24px",
							BoxShadow: "0 10px 15px -3px rgba(0, 0, 0, 0.1)",
						},
					},
				},
			},
		},
	}
}
