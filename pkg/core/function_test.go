package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignature(t *testing.T) {
	params := []Type{TypeInt, TypeString}
	sig := NewSignature(TypeString, params...)

	assert.Equal(t, "(INT,STRING)", sig.ParamList())
	assert.Equal(t, "(INT,STRING) RETURNS STRING", sig.String())

	params[0] = TypeBoolean
	assert.Equal(t, TypeInt, sig.Params[0], "NewSignature should copy params")

	assert.Equal(t, "() RETURNS INT", NewSignature(TypeInt).String())
}

func TestSignature_Equal(t *testing.T) {
	a := NewSignature(TypeString, TypeInt)

	assert.True(t, a.Equal(NewSignature(TypeString, TypeInt)))
	assert.False(t, a.Equal(NewSignature(TypeInt, TypeInt)))
	assert.False(t, a.Equal(NewSignature(TypeString, TypeInt, TypeInt)))
	assert.False(t, a.Equal(NewSignature(TypeString, Type{Primitive: Varchar, Len: 3})))
	assert.True(t, NewSignature(TypeInt).Equal(Signature{Return: TypeInt}))
}

func TestFunctionReference_QualifiedName(t *testing.T) {
	var nilRef *FunctionReference
	assert.Empty(t, nilRef.QualifiedName())

	assert.Equal(t, "upper", (&FunctionReference{Name: "upper"}).QualifiedName())
	assert.Equal(t, "sales.upper", (&FunctionReference{Database: "sales", Name: "upper"}).QualifiedName())
}
