/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"fmt"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/viper"
)

// propertiesFormat is the viper config type of Java style properties files.
const propertiesFormat = "properties"

// propertiesCodec decodes properties files into viper's flat key space.
type propertiesCodec struct{}

func (propertiesCodec) Decode(b []byte, v map[string]any) error {
	p, err := properties.Load(b, properties.UTF8)
	if err != nil {
		return err
	}

	for _, key := range p.Keys() {
		value, _ := p.Get(key)

		v[key] = value
	}

	return nil
}

// decoders resolves viper config types to decoders.
type decoders struct{}

func (decoders) Decoder(format string) (viper.Decoder, error) {
	if strings.EqualFold(format, propertiesFormat) {
		return propertiesCodec{}, nil
	}

	return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalidConfig, format)
}
