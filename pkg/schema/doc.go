// Package schema holds the explicit field-descriptor tables the validation
// engine traverses instead of reflecting over structs.
//
// Each validatable type registers a Type: its kind plus an ordered list of
// Field entries (name, rule descriptors, optional default, value accessor).
// Accessors are plain functions written at registration time, which keeps
// field enumeration static, reflection-free, and easy to audit.
//
// # Usage
//
//	reg := schema.NewRegistry()
//	reg.MustRegister(&schema.Type{
//	    Kind: "order",
//	    Fields: []schema.Field{
//	        {
//	            Name:  "orderNumber",
//	            Rules: []rules.Descriptor{rules.Presence()},
//	            Value: func(e any) any { return e.(*Order).OrderNumber },
//	        },
//	    },
//	})
//
// Registries are meant to be built once during initialization and shared
// read-only afterwards.
package schema
