package opengl

// MaxDirectionalLights and MaxPointLights size the light uniform arrays.
const (
	MaxDirectionalLights = 4
	MaxPointLights       = 48
)

// vertex shader: world position, normal and view depth for the forward pass.
// The light-space position is taken from the normal-offset world position.
const vertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inUV;

uniform mat4 model;
uniform mat3 normalMatrix;
uniform mat4 view;
uniform mat4 projection;
uniform mat4 lightViewProj;
uniform float shadowNormalBias;

out vec3 fragWorldPos;
out vec3 fragNormal;
out vec2 fragUV;
out vec4 fragLightSpacePos;
out float fragViewDepth;

void main() {
    vec4 worldPos = model * vec4(inPosition, 1.0);
    vec3 n = normalize(normalMatrix * inNormal);
    vec4 viewPos = view * worldPos;

    fragWorldPos      = worldPos.xyz;
    fragNormal        = n;
    fragUV            = inUV;
    fragLightSpacePos = lightViewProj * vec4(worldPos.xyz + n * shadowNormalBias, 1.0);
    fragViewDepth     = -viewPos.z;
    gl_Position       = projection * viewPos;
}
` + "\x00"

// fragment shader: Cook-Torrance with directional and point lights, a
// filtered directional shadow, tone mapping, sRGB output and linear fog.
const fragSrc = `
#version 410 core
in vec3 fragWorldPos;
in vec3 fragNormal;
in vec2 fragUV;
in vec4 fragLightSpacePos;
in float fragViewDepth;

out vec4 outColor;

#define MAX_DIR_LIGHTS 4
#define MAX_POINT_LIGHTS 48

uniform vec3 ambient;

uniform int  dirLightCount;
uniform vec3 dirLightDir[MAX_DIR_LIGHTS];
uniform vec3 dirLightRadiance[MAX_DIR_LIGHTS];

uniform int  pointLightCount;
uniform vec3 pointLightPos[MAX_POINT_LIGHTS];
uniform vec3 pointLightRadiance[MAX_POINT_LIGHTS];
uniform vec2 pointLightFalloff[MAX_POINT_LIGHTS]; // distance, decay

uniform vec3 cameraPos;

uniform vec3  matAlbedo;
uniform float matOpacity;
uniform float matRoughness;
uniform float matMetallic;
uniform vec3  matEmissive;

uniform sampler2DShadow shadowMap;
uniform int   shadowLight; // index into dirLight*, -1 when off
uniform bool  receiveShadow;
uniform float shadowBias;
uniform float shadowTexel;
uniform int   shadowKernel; // half-width of the PCF kernel

uniform int   toneMapping; // 0 none, 1 ACES filmic
uniform float exposure;

uniform bool  fogEnabled;
uniform vec3  fogColor;
uniform float fogNear;
uniform float fogFar;

const float PI = 3.14159265359;

float calcShadow() {
    vec3 p = fragLightSpacePos.xyz / fragLightSpacePos.w;
    p = p * 0.5 + 0.5;
    if (p.z > 1.0) return 1.0;
    float ref = p.z + shadowBias;
    float sum = 0.0;
    int taps = 0;
    for (int x = -shadowKernel; x <= shadowKernel; x++) {
        for (int y = -shadowKernel; y <= shadowKernel; y++) {
            sum += texture(shadowMap, vec3(p.xy + vec2(float(x), float(y)) * shadowTexel, ref));
            taps++;
        }
    }
    return sum / float(taps);
}

float DistributionGGX(vec3 N, vec3 H, float roughness) {
    float a  = roughness * roughness;
    float a2 = a * a;
    float NdH = max(dot(N, H), 0.0);
    float d   = NdH * NdH * (a2 - 1.0) + 1.0;
    return a2 / (PI * d * d);
}

float GeometrySchlickGGX(float cosTheta, float roughness) {
    float r = roughness + 1.0;
    float k = (r * r) / 8.0;
    return cosTheta / (cosTheta * (1.0 - k) + k);
}

vec3 FresnelSchlick(float cosTheta, vec3 F0) {
    return F0 + (1.0 - F0) * pow(clamp(1.0 - cosTheta, 0.0, 1.0), 5.0);
}

// radiance is scaled by PI so a light of intensity 1 lights a white
// lambertian surface to 1 at normal incidence.
vec3 evalPBR(vec3 N, vec3 V, vec3 L, vec3 radiance, vec3 albedo, float metallic, float roughness, vec3 F0) {
    float NdL = max(dot(N, L), 0.0);
    if (NdL <= 0.0) return vec3(0.0);

    vec3  H   = normalize(V + L);
    float NdV = max(dot(N, V), 0.0);

    float D = DistributionGGX(N, H, roughness);
    float G = GeometrySchlickGGX(NdV, roughness) * GeometrySchlickGGX(NdL, roughness);
    vec3  F = FresnelSchlick(max(dot(H, V), 0.0), F0);

    vec3 kD       = (vec3(1.0) - F) * (1.0 - metallic);
    vec3 specular = D * G * F / max(4.0 * NdV * NdL, 0.001);
    return (kD * albedo / PI + specular) * radiance * PI * NdL;
}

vec3 RRTAndODTFit(vec3 v) {
    vec3 a = v * (v + 0.0245786) - 0.000090537;
    vec3 b = v * (0.983729 * v + 0.4329510) + 0.238081;
    return a / b;
}

vec3 ACESFilmic(vec3 color) {
    const mat3 inputMat = mat3(
        vec3(0.59719, 0.07600, 0.02840),
        vec3(0.35458, 0.90834, 0.13383),
        vec3(0.04823, 0.01566, 0.83777));
    const mat3 outputMat = mat3(
        vec3( 1.60475, -0.10208, -0.00327),
        vec3(-0.53108,  1.10813, -0.07276),
        vec3(-0.07367, -0.00605,  1.07602));
    color *= exposure / 0.6;
    color = inputMat * color;
    color = RRTAndODTFit(color);
    color = outputMat * color;
    return clamp(color, 0.0, 1.0);
}

vec3 linearToSRGB(vec3 c) {
    vec3 lo = c * 12.92;
    vec3 hi = 1.055 * pow(c, vec3(1.0 / 2.4)) - 0.055;
    return mix(lo, hi, step(vec3(0.0031308), c));
}

void main() {
    vec3 N = normalize(fragNormal);
    if (!gl_FrontFacing) N = -N;
    vec3 V = normalize(cameraPos - fragWorldPos);

    vec3  albedo    = matAlbedo;
    float metallic  = matMetallic;
    float roughness = clamp(matRoughness, 0.04, 1.0);
    vec3  F0        = mix(vec3(0.04), albedo, metallic);

    vec3 color = ambient * albedo * (1.0 - metallic);

    for (int i = 0; i < dirLightCount && i < MAX_DIR_LIGHTS; i++) {
        vec3 radiance = dirLightRadiance[i];
        if (i == shadowLight && receiveShadow) {
            radiance *= calcShadow();
        }
        color += evalPBR(N, V, normalize(-dirLightDir[i]), radiance, albedo, metallic, roughness, F0);
    }

    for (int i = 0; i < pointLightCount && i < MAX_POINT_LIGHTS; i++) {
        vec3  toLight = pointLightPos[i] - fragWorldPos;
        float dist    = length(toLight);
        float atten   = 1.0;
        if (pointLightFalloff[i].x > 0.0) {
            atten = pow(clamp(1.0 - dist / pointLightFalloff[i].x, 0.0, 1.0), pointLightFalloff[i].y);
        }
        if (atten <= 0.0) continue;
        color += evalPBR(N, V, toLight / dist, pointLightRadiance[i] * atten, albedo, metallic, roughness, F0);
    }

    color += matEmissive;

    if (toneMapping == 1) {
        color = ACESFilmic(color);
    } else {
        color = clamp(color * exposure, 0.0, 1.0);
    }
    color = linearToSRGB(color);

    if (fogEnabled) {
        float f = smoothstep(fogNear, fogFar, fragViewDepth);
        color = mix(color, fogColor, f);
    }
    outColor = vec4(color, matOpacity);
}
` + "\x00"

// depth-only vertex shader for the shadow map pass
const depthVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
uniform mat4 lightMVP;
void main() {
    gl_Position = lightMVP * vec4(inPosition, 1.0);
}
` + "\x00"

// depth-only fragment shader (OpenGL writes depth implicitly)
const depthFragSrc = `
#version 410 core
void main() {}
` + "\x00"
