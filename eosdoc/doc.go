package eosdoc

//Package eosdoc assembles a parsed HeFESTo corpus into the EoS XML
//document tree and renders it. The assembler owns the whole tree until it
//is handed to serialization; nothing is shared across branches, and every
//structure is read-only once built. Solution phases get their endmember
//children from the interaction file headers, identifier collisions are
//resolved through the configured overrides, and all unit conversions are
//exact textual exponent rewrites applied at emission time.
