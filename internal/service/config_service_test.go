package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/model"
	"backend/internal/storage"
)

func newConfigService(t *testing.T) ConfigService {
	t.Helper()
	configs, err := storage.OpenConfigStore(t.TempDir())
	require.NoError(t, err)
	return NewConfigService(configs)
}

func TestGetConfigsTypeValidation(t *testing.T) {
	svc := newConfigService(t)

	_, err := svc.GetConfigs("nonsense")
	assert.Error(t, err)

	items, err := svc.GetConfigs("")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = svc.GetConfigs("faq")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateConfigDefaultsActive(t *testing.T) {
	svc := newConfigService(t)

	item, err := svc.CreateConfig(CreateConfigRequest{
		Type:        model.ConfigFAQ,
		Title:       "如何预约",
		Description: "预约流程说明",
		Content:     "通过网站提交预约表单即可。",
	})
	require.NoError(t, err)
	assert.True(t, item.IsActive)
	assert.NotEmpty(t, item.ID)

	inactive := false
	hidden, err := svc.CreateConfig(CreateConfigRequest{
		Type:        model.ConfigFAQ,
		Title:       "隐藏条目",
		Description: "暂不展示的条目",
		Content:     "内容等待后续补充完整。",
		IsActive:    &inactive,
	})
	require.NoError(t, err)
	assert.False(t, hidden.IsActive)

	visible, err := svc.GetConfigs("faq")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, item.ID, visible[0].ID)
}

func TestCreateConfigRejectsUnknownType(t *testing.T) {
	svc := newConfigService(t)

	_, err := svc.CreateConfig(CreateConfigRequest{
		Type:        "banner",
		Title:       "标题",
		Description: "描述内容",
		Content:     "正文内容正文内容",
	})
	assert.Error(t, err)
}

func TestUpdateConfigPartialFields(t *testing.T) {
	svc := newConfigService(t)

	item, err := svc.CreateConfig(CreateConfigRequest{
		Type:        model.ConfigService,
		Title:       "个体咨询",
		Description: "一对一心理咨询服务",
		Content:     "面向个人的深度咨询服务。",
		Order:       2,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateConfig(item.ID, UpdateConfigRequest{
		Title:       "个体深度咨询",
		Description: "一对一心理咨询服务",
		Content:     "面向个人的深度咨询服务。",
	})
	require.NoError(t, err)
	assert.Equal(t, "个体深度咨询", updated.Title)
	// Order was omitted from the request and must survive.
	assert.Equal(t, 2, updated.Order)
	assert.Equal(t, item.ID, updated.ID)

	_, err = svc.UpdateConfig("missing", UpdateConfigRequest{
		Title: "标题", Description: "描述内容", Content: "正文内容正文内容",
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestReorder(t *testing.T) {
	svc := newConfigService(t)

	var ids []string
	for i, title := range []string{"一", "二", "三"} {
		item, err := svc.CreateConfig(CreateConfigRequest{
			Type:        model.ConfigFeature,
			Title:       title + title,
			Description: "特性描述" + title,
			Content:     "特性详细说明内容" + title,
			Order:       i + 1,
		})
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}

	err := svc.Reorder(ReorderRequest{
		Type: model.ConfigFeature,
		Updates: []storage.OrderUpdate{
			{ID: ids[0], Order: 3},
			{ID: ids[2], Order: 1},
		},
	})
	require.NoError(t, err)

	got, err := svc.GetConfigs("feature")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, ids[2], got[0].ID)
	assert.Equal(t, ids[1], got[1].ID)
	assert.Equal(t, ids[0], got[2].ID)

	err = svc.Reorder(ReorderRequest{Type: "bad", Updates: []storage.OrderUpdate{{ID: ids[0], Order: 1}}})
	assert.Error(t, err)
}

func TestInitializeAndStatus(t *testing.T) {
	svc := newConfigService(t)

	status := svc.Status()
	assert.True(t, status.NeedsInitialization)
	assert.Equal(t, 0, status.ConfigCount)

	inserted, err := svc.Initialize()
	require.NoError(t, err)
	assert.Greater(t, inserted, 0)

	status = svc.Status()
	assert.False(t, status.NeedsInitialization)
	assert.Equal(t, inserted, status.ConfigCount)

	again, err := svc.Initialize()
	require.NoError(t, err)
	assert.Equal(t, 0, again)
}
