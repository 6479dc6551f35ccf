package utils

import (
	"maps"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticbeanstalk/types"
	"github.com/savaki/eb-options/internal/constants"
)

// OptionSettings returns the entries of m as Elastic Beanstalk environment
// properties sorted by name
func OptionSettings(m map[string]string) []types.ConfigurationOptionSetting {
	results := make([]types.ConfigurationOptionSetting, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		results = append(results, types.ConfigurationOptionSetting{
			Namespace:  aws.String(constants.OptionNamespace),
			OptionName: aws.String(k),
			Value:      aws.String(m[k]),
		})
	}

	return results
}

// OptionNames lists the option names of the given settings in order
func OptionNames(settings []types.ConfigurationOptionSetting) []string {
	names := make([]string, 0, len(settings))
	for _, s := range settings {
		names = append(names, aws.ToString(s.OptionName))
	}
	return names
}
