package static

import (
	"github.com/tgmsites/site-engine/internal/domain"
)

// Compiled-in tenants and bindings for environments without a reachable
// database. The tag sets follow the production spider-pool configuration:
// each domain biases content toward a different slice of the shared
// Telegram content base.
var defaultTenants = []domain.Tenant{
	{
		ID:                 "0a6f1c3e-0000-4000-8000-000000000001",
		Name:               "Telegram中文网",
		Domain:             "telegram1688.com",
		Status:             domain.TenantStatusActive,
		DefaultTitle:       "Telegram中文网",
		DefaultDescription: "Telegram中文官方服务平台，提供中文版下载、使用教程、最新资讯",
		DefaultKeywords:    []string{"telegram", "telegram中文", "tg"},
	},
	{
		ID:                 "0a6f1c3e-0000-4000-8000-000000000002",
		Name:               "Telegram中文服务",
		Domain:             "telegramcnfw.com",
		Status:             domain.TenantStatusActive,
		DefaultTitle:       "Telegram中文服务",
		DefaultDescription: "Telegram中文服务网，提供专业的TG中文版下载和技术支持",
		DefaultKeywords:    []string{"telegram下载", "telegram功能", "tg"},
	},
	{
		ID:                 "0a6f1c3e-0000-4000-8000-000000000003",
		Name:               "TG中文纸飞机",
		Domain:             "telegramtgm.com",
		Status:             domain.TenantStatusActive,
		DefaultTitle:       "TG中文纸飞机",
		DefaultDescription: "Telegram中文版官方网站 - 下载、教程、功能介绍",
		DefaultKeywords:    []string{"telegram", "tg", "纸飞机"},
	},
}

// DefaultBindings returns the compiled-in binding table with tenants
// attached. Declaration order is the fallback-match order.
func DefaultBindings() []domain.DomainBinding {
	t1, t2, t3 := &defaultTenants[0], &defaultTenants[1], &defaultTenants[2]

	return []domain.DomainBinding{
		{
			ID:              "b0000000-0000-4000-8000-000000000101",
			Hostname:        "telegram1688.com",
			TenantID:        t1.ID,
			IsPrimary:       true,
			SiteName:        "Telegram中文网",
			SiteDescription: "Telegram中文官方服务平台，提供中文版下载、使用教程、最新资讯",
			PrimaryTags:     []string{"telegram", "telegram中文", "tg"},
			SecondaryTags:   []string{"telegram下载", "telegram功能"},
			Status:          domain.BindingStatusActive,
			Tenant:          t1,
		},
		{
			ID:              "b0000000-0000-4000-8000-000000000102",
			Hostname:        "telegramxzb.com",
			TenantID:        t1.ID,
			SiteName:        "Telegram下载吧",
			SiteDescription: "Telegram官方下载站，支持全平台中文版下载",
			PrimaryTags:     []string{"telegram下载", "tg下载", "纸飞机下载"},
			SecondaryTags:   []string{"telegram安装", "telegram中文"},
			Status:          domain.BindingStatusActive,
			Tenant:          t1,
		},
		{
			ID:              "b0000000-0000-4000-8000-000000000201",
			Hostname:        "telegramcnfw.com",
			TenantID:        t2.ID,
			IsPrimary:       true,
			SiteName:        "Telegram中文服务",
			SiteDescription: "Telegram中文服务网，提供专业的TG中文版下载和技术支持",
			PrimaryTags:     []string{"telegram功能", "tg功能", "telegram特点"},
			SecondaryTags:   []string{"telegram主题", "telegram收藏夹"},
			Status:          domain.BindingStatusActive,
			Tenant:          t2,
		},
		{
			ID:              "b0000000-0000-4000-8000-000000000301",
			Hostname:        "telegramtgm.com",
			TenantID:        t3.ID,
			IsPrimary:       true,
			SiteName:        "TG中文纸飞机",
			SiteDescription: "Telegram中文版官方网站 - 下载、教程、功能介绍",
			PrimaryTags:     []string{"telegram", "tg", "telegram中文", "什么是telegram"},
			SecondaryTags:   []string{"telegram下载", "telegram功能"},
			Status:          domain.BindingStatusActive,
			Tenant:          t3,
		},
		{
			ID:              "b0000000-0000-4000-8000-000000000302",
			Hostname:        "localhost",
			TenantID:        t3.ID,
			SiteName:        "TG中文纸飞机",
			SiteDescription: "Telegram中文版官方网站 - 下载、教程、功能介绍",
			PrimaryTags:     []string{"telegram", "tg", "telegram中文"},
			SecondaryTags:   []string{"telegram下载"},
			Status:          domain.BindingStatusActive,
			Tenant:          t3,
		},
	}
}
