package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingValueValidate(t *testing.T) {
	assert.NoError(t, StringValue("dark").Validate())
	assert.NoError(t, NumberValue(12).Validate())
	assert.NoError(t, BoolValue(true).Validate())
	assert.NoError(t, StringListValue([]string{"1", "2"}).Validate())

	assert.Error(t, SettingValue{Kind: SettingString}.Validate())
	assert.Error(t, SettingValue{Kind: SettingNumber}.Validate())
	assert.Error(t, SettingValue{Kind: SettingBool}.Validate())
	assert.Error(t, SettingValue{Kind: SettingStringList}.Validate())
	assert.Error(t, SettingValue{Kind: "mystery"}.Validate())
	assert.Error(t, SettingValue{}.Validate())
}

func TestSettingValueStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringListValue([]string{"a", "b"}).StringList())
	assert.Nil(t, StringValue("a").StringList())
}

func TestSettingValueScanRoundTrip(t *testing.T) {
	original := StringListValue([]string{"7", "3", "9"})
	raw, err := original.Value()
	require.NoError(t, err)

	var scanned SettingValue
	require.NoError(t, scanned.Scan(raw))
	assert.Equal(t, original, scanned)

	var fromNull SettingValue
	require.NoError(t, fromNull.Scan(nil))
	assert.Equal(t, SettingValue{}, fromNull)
}
