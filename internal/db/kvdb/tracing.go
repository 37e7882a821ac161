// Copyright (C) 2025 the travel-agency maintainers
// See root-dir/LICENSE for more information

package kvdb

import "go.opentelemetry.io/otel"

var tracer = otel.GetTracerProvider().Tracer("github.com/JuanCarriles/travel-agency/internal/db/kvdb")
